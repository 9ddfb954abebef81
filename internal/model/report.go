package model

import "time"

// Report is the complete output of one credibility analysis
type Report struct {
	ID         string    `json:"id"`                  // Request-scoped UUID
	AnalyzedAt time.Time `json:"analyzed_at"`         // When the analysis ran
	InputChars int       `json:"input_chars"`         // Length of the analyzed text
	SourceURL  string    `json:"source_url,omitempty"` // Set when the input came from a URL scan

	Claims             []Claim                 `json:"claims"`
	SourceCredibility  SourceCredibilityReport `json:"source_credibility"`
	FactCheckResults   [][]FactCheckResult     `json:"fact_check_results"` // Aligned with Claims by index
	News               NewsReport              `json:"news"`
	Corrections        []Correction            `json:"corrections,omitempty"`
	OverallCredibility CredibilityAssessment   `json:"overall_credibility"`

	Explanation *Explanation `json:"explanation,omitempty"` // Optional LLM narrative, never affects scoring
}

// CredibilityAssessment is the final weighted score with its breakdown
type CredibilityAssessment struct {
	Score            int            `json:"score"` // Always clamped to [5, 95]
	Breakdown        ScoreBreakdown `json:"breakdown"`
	ConfidenceWeight float64        `json:"confidence_weight"` // Fraction of evidence weight actually available
	FactorsCovered   string         `json:"factors_covered"`   // e.g. "2/3 factors had data"
}

// ScoreBreakdown reports each raw component value for explainability.
// A component that had no data reports 0 and is excluded from the weighted mean.
type ScoreBreakdown struct {
	SourceCredibility  int `json:"source_credibility"`
	FactCheckConsensus int `json:"fact_check_consensus"`
	ClaimsVerification int `json:"claims_verification"`
}

// Explanation contains an optional LLM-generated plain-language summary.
// It is produced after scoring and never feeds back into the score.
type Explanation struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Text     string `json:"text"`
}
