package evidence

import (
	"fmt"

	"github.com/veracitylab/veracity/internal/model"
)

// BuildCorrections merges claim-level fact-check results into corrective
// statements. The two slices are positionally aligned (same index, same
// claim); a length mismatch is tolerated by iterating only the shorter one.
// Only results rated FALSE or MISLEADING produce corrections.
func BuildCorrections(claims []model.Claim, perClaim [][]model.FactCheckResult) []model.Correction {
	n := len(claims)
	if len(perClaim) < n {
		n = len(perClaim)
	}

	var corrections []model.Correction
	for i := 0; i < n; i++ {
		for _, result := range perClaim[i] {
			issue := ""
			switch result.Rating {
			case model.RatingFalse:
				issue = "This claim is false"
			case model.RatingMisleading:
				issue = "This claim is misleading"
			default:
				continue
			}

			corrections = append(corrections, model.Correction{
				OriginalClaim: claims[i].Text,
				Issue:         issue,
				Correction:    result.Summary,
				Source:        result.Source,
				SourceURL:     result.URL,
				Confidence:    result.Confidence,
				Evidence:      evidenceLine(result),
			})
		}
	}
	return corrections
}

// evidenceLine states the source and, when known, the review date
func evidenceLine(result model.FactCheckResult) string {
	if result.ReviewDate != nil {
		return fmt.Sprintf("Reviewed by %s on %s", result.Source, result.ReviewDate.Format("2006-01-02"))
	}
	return fmt.Sprintf("Reviewed by %s", result.Source)
}
