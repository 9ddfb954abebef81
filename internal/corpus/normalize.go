package corpus

import (
	"strings"

	"github.com/veracitylab/veracity/internal/model"
)

// NormalizeRating maps a provider's free-text rating into the canonical
// 4-value taxonomy. The mapping is total: every input, including empty and
// unrecognized strings, yields exactly one taxonomy value, and normalizing
// an already-normalized value is a no-op.
func NormalizeRating(raw string) model.Rating {
	rating := strings.ToUpper(strings.TrimSpace(raw))

	switch rating {
	case "TRUE", "MOSTLY TRUE", "ACCURATE", "CORRECT", string(model.RatingVerified):
		return model.RatingVerified
	case "FALSE", "MOSTLY FALSE", "INCORRECT", "DEBUNKED", "PANTS ON FIRE":
		return model.RatingFalse
	case "MISLEADING", "PARTLY FALSE", "PARTLY TRUE", "MIXED", "MIXTURE",
		"HALF TRUE", "OUT OF CONTEXT":
		return model.RatingMisleading
	default:
		return model.RatingUnverified
	}
}

// Relevance scores how much of the query a candidate text covers, in [0,1]:
// the fraction of significant query words (longer than 3 characters) that
// appear as a substring of, or contain, some word of the candidate.
func Relevance(query, candidate string) float64 {
	queryWords := significantWords(query)
	if len(queryWords) == 0 {
		return 0
	}

	candidateWords := significantWords(candidate)
	matched := 0
	for _, qw := range queryWords {
		for _, cw := range candidateWords {
			if strings.Contains(cw, qw) || strings.Contains(qw, cw) {
				matched++
				break
			}
		}
	}

	return float64(matched) / float64(len(queryWords))
}

func significantWords(s string) []string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(s)) {
		w = strings.Trim(w, `.,!?;:"'()[]`)
		if len(w) > 3 {
			words = append(words, w)
		}
	}
	return words
}
