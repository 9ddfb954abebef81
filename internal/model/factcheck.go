package model

import "time"

// Rating is the canonical 4-value fact-check taxonomy.
// Every provider-native rating string is normalized into one of these.
type Rating string

const (
	RatingVerified   Rating = "VERIFIED"
	RatingFalse      Rating = "FALSE"
	RatingMisleading Rating = "MISLEADING"
	RatingUnverified Rating = "UNVERIFIED"
)

// FactCheckResult is a normalized verdict about a single claim
type FactCheckResult struct {
	Source     string     `json:"source"`                // Fact-checker or publisher name
	Rating     Rating     `json:"rating"`                // Canonical taxonomy value
	Summary    string     `json:"summary"`               // What the fact-checker concluded
	URL        string     `json:"url,omitempty"`         // Link to the review
	Confidence int        `json:"confidence"`            // 0-100
	Relevance  float64    `json:"relevance"`             // 0.0-1.0 overlap with the query
	ReviewDate *time.Time `json:"review_date,omitempty"` // When the review was published
}

// ArticleRef is a normalized reference to a news article covering a claim
type ArticleRef struct {
	Source           string    `json:"source"`            // Outlet name
	Title            string    `json:"title"`
	URL              string    `json:"url,omitempty"`
	PublishedAt      time.Time `json:"published_at"`
	CredibilityScore int       `json:"credibility_score"` // Outlet heuristic, 0-100
}

// NewsReport summarizes recent news coverage relevant to the analyzed content
type NewsReport struct {
	TotalArticles      int          `json:"total_articles"`
	Articles           []ArticleRef `json:"articles,omitempty"`
	AverageCredibility float64      `json:"average_credibility"`
}

// Correction is a generated corrective statement for a false or misleading claim
type Correction struct {
	OriginalClaim string `json:"original_claim"`
	Issue         string `json:"issue"`      // "This claim is false" / "This claim is misleading"
	Correction    string `json:"correction"` // The fact-checker's summary
	Source        string `json:"source"`
	SourceURL     string `json:"source_url,omitempty"`
	Confidence    int    `json:"confidence"`
	Evidence      string `json:"evidence"`
}
