package score

import (
	"fmt"
	"math"

	"github.com/veracitylab/veracity/internal/model"
)

// Component weights. Components with no data are excluded and the final
// score is renormalized over the weights that remain.
const (
	weightSource     = 0.35
	weightFactChecks = 0.40
	weightClaims     = 0.25

	neutralScore = 50
	minScore     = 5
	maxScore     = 95
)

// ratingBase maps each taxonomy rating to its numeric base value
var ratingBase = map[model.Rating]float64{
	model.RatingVerified:   90,
	model.RatingUnverified: 50,
	model.RatingMisleading: 30,
	model.RatingFalse:      10,
}

// Scorer combines source credibility, fact-check consensus and claim
// confidence into one weighted assessment
type Scorer struct{}

// NewScorer creates a scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score computes the weighted overall credibility. Missing components drop
// out of both the numerator and the weight denominator; with no data at all
// the result is neutral. The final score is clamped to [5,95]: automated
// assessment never asserts near-certain truth or falsehood.
func (s *Scorer) Score(
	sourceReport model.SourceCredibilityReport,
	perClaim [][]model.FactCheckResult,
	claims []model.Claim,
) model.CredibilityAssessment {
	var weightedSum, totalWeight float64
	var breakdown model.ScoreBreakdown
	available := 0

	if len(sourceReport.Domains) > 0 {
		value := float64(sourceReport.OverallScore)
		breakdown.SourceCredibility = sourceReport.OverallScore
		weightedSum += value * weightSource
		totalWeight += weightSource
		available++
	}

	if consensus, ok := factCheckConsensus(perClaim); ok {
		breakdown.FactCheckConsensus = int(math.Round(consensus))
		weightedSum += consensus * weightFactChecks
		totalWeight += weightFactChecks
		available++
	}

	if verification, ok := claimsVerification(claims); ok {
		breakdown.ClaimsVerification = int(math.Round(verification))
		weightedSum += verification * weightClaims
		totalWeight += weightClaims
		available++
	}

	final := float64(neutralScore)
	if totalWeight > 0 {
		final = weightedSum / totalWeight
	}

	return model.CredibilityAssessment{
		Score:            clamp(int(math.Round(final))),
		Breakdown:        breakdown,
		ConfidenceWeight: totalWeight,
		FactorsCovered:   fmt.Sprintf("%d/3 factors had data", available),
	}
}

// factCheckConsensus is the weighted mean of rating base values across all
// results, each weighted by (confidence/100) * relevance
func factCheckConsensus(perClaim [][]model.FactCheckResult) (float64, bool) {
	var sum, weights float64
	for _, results := range perClaim {
		for _, r := range results {
			weight := (float64(r.Confidence) / 100) * r.Relevance
			sum += ratingBase[r.Rating] * weight
			weights += weight
		}
	}
	if weights == 0 {
		return 0, false
	}
	return sum / weights, true
}

// claimsVerification is the mean extraction confidence across claims, on a
// 0-100 scale
func claimsVerification(claims []model.Claim) (float64, bool) {
	if len(claims) == 0 {
		return 0, false
	}
	var sum float64
	for _, c := range claims {
		sum += c.Confidence * 100
	}
	return sum / float64(len(claims)), true
}

func clamp(score int) int {
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
