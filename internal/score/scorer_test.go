package score

import (
	"testing"

	"github.com/veracitylab/veracity/internal/model"
)

func sourceReport(score int) model.SourceCredibilityReport {
	return model.SourceCredibilityReport{
		Domains:      []model.DomainAssessment{{Domain: "example.com", Score: score}},
		OverallScore: score,
	}
}

func TestScorer_AllComponentsPresent(t *testing.T) {
	scorer := NewScorer()

	claims := []model.Claim{{Text: "claim", Confidence: 0.8}}
	perClaim := [][]model.FactCheckResult{{
		{Rating: model.RatingVerified, Confidence: 90, Relevance: 1.0},
	}}

	assessment := scorer.Score(sourceReport(80), perClaim, claims)

	if assessment.ConfidenceWeight != 1.0 {
		t.Errorf("Expected full confidence weight, got %.2f", assessment.ConfidenceWeight)
	}
	if assessment.FactorsCovered != "3/3 factors had data" {
		t.Errorf("Unexpected factors line: %q", assessment.FactorsCovered)
	}

	// 80*0.35 + 90*0.40 + 80*0.25 = 28 + 36 + 20 = 84
	if assessment.Score != 84 {
		t.Errorf("Expected score 84, got %d", assessment.Score)
	}
	if assessment.Breakdown.SourceCredibility != 80 {
		t.Errorf("Expected source breakdown 80, got %d", assessment.Breakdown.SourceCredibility)
	}
	if assessment.Breakdown.FactCheckConsensus != 90 {
		t.Errorf("Expected fact-check breakdown 90, got %d", assessment.Breakdown.FactCheckConsensus)
	}
	if assessment.Breakdown.ClaimsVerification != 80 {
		t.Errorf("Expected claims breakdown 80, got %d", assessment.Breakdown.ClaimsVerification)
	}
}

func TestScorer_WeightedConsensusFavorsHighWeightResults(t *testing.T) {
	scorer := NewScorer()

	// VERIFIED at weight 0.81 vs FALSE at weight 0.10
	perClaim := [][]model.FactCheckResult{{
		{Rating: model.RatingVerified, Confidence: 90, Relevance: 0.9},
		{Rating: model.RatingFalse, Confidence: 50, Relevance: 0.2},
	}}

	assessment := scorer.Score(model.SourceCredibilityReport{}, perClaim, nil)

	if assessment.Breakdown.FactCheckConsensus <= 75 {
		t.Errorf("Expected consensus above 75, got %d", assessment.Breakdown.FactCheckConsensus)
	}
	// Only the fact-check component has data
	if assessment.ConfidenceWeight != 0.40 {
		t.Errorf("Expected confidence weight 0.40, got %.2f", assessment.ConfidenceWeight)
	}
	if assessment.Score != assessment.Breakdown.FactCheckConsensus {
		t.Errorf("Renormalized single-component score should equal the component: %d vs %d",
			assessment.Score, assessment.Breakdown.FactCheckConsensus)
	}
}

func TestScorer_MissingComponentsExcluded(t *testing.T) {
	scorer := NewScorer()

	// No claims extracted: claims component absent, others still compute
	perClaim := [][]model.FactCheckResult{{
		{Rating: model.RatingUnverified, Confidence: 60, Relevance: 0.5},
	}}

	assessment := scorer.Score(sourceReport(70), perClaim, nil)

	if assessment.Breakdown.ClaimsVerification != 0 {
		t.Errorf("Absent component must report 0, got %d", assessment.Breakdown.ClaimsVerification)
	}
	if assessment.ConfidenceWeight >= 1.0 {
		t.Errorf("Expected confidence weight < 1.0, got %.2f", assessment.ConfidenceWeight)
	}
	// (70*0.35 + 50*0.40) / 0.75 = 44.5/0.75 ≈ 59
	if assessment.Score != 59 {
		t.Errorf("Expected renormalized score 59, got %d", assessment.Score)
	}
}

func TestScorer_NoDataIsNeutral(t *testing.T) {
	scorer := NewScorer()

	assessment := scorer.Score(model.SourceCredibilityReport{}, nil, nil)

	if assessment.Score != 50 {
		t.Errorf("Expected neutral 50, got %d", assessment.Score)
	}
	if assessment.ConfidenceWeight != 0 {
		t.Errorf("Expected zero confidence weight, got %.2f", assessment.ConfidenceWeight)
	}
	if assessment.FactorsCovered != "0/3 factors had data" {
		t.Errorf("Unexpected factors line: %q", assessment.FactorsCovered)
	}
}

func TestScorer_BoundsAlwaysHeld(t *testing.T) {
	scorer := NewScorer()

	// Extreme low: terrible source, all FALSE results, weak claims
	lowPerClaim := [][]model.FactCheckResult{{
		{Rating: model.RatingFalse, Confidence: 100, Relevance: 1.0},
		{Rating: model.RatingFalse, Confidence: 100, Relevance: 1.0},
	}}
	low := scorer.Score(sourceReport(0), lowPerClaim, []model.Claim{{Confidence: 0}})
	if low.Score < 5 || low.Score > 95 {
		t.Errorf("Low score out of [5,95]: %d", low.Score)
	}
	if low.Score != 5 {
		t.Errorf("Expected clamp to 5, got %d", low.Score)
	}

	// Extreme high: perfect source, all VERIFIED, confident claims
	highPerClaim := [][]model.FactCheckResult{{
		{Rating: model.RatingVerified, Confidence: 100, Relevance: 1.0},
	}}
	high := scorer.Score(sourceReport(100), highPerClaim, []model.Claim{{Confidence: 1.0}})
	if high.Score < 5 || high.Score > 95 {
		t.Errorf("High score out of [5,95]: %d", high.Score)
	}
	if high.Score != 95 {
		t.Errorf("Expected clamp to 95, got %d", high.Score)
	}
}

func TestScorer_ZeroWeightResultsIgnored(t *testing.T) {
	scorer := NewScorer()

	// Relevance 0 zeroes the weight: component has no usable data
	perClaim := [][]model.FactCheckResult{{
		{Rating: model.RatingFalse, Confidence: 100, Relevance: 0},
	}}

	assessment := scorer.Score(model.SourceCredibilityReport{}, perClaim, nil)
	if assessment.ConfidenceWeight != 0 {
		t.Errorf("Expected zero-weight results to leave the component absent, got %.2f",
			assessment.ConfidenceWeight)
	}
	if assessment.Score != 50 {
		t.Errorf("Expected neutral 50, got %d", assessment.Score)
	}
}
