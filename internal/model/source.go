package model

// DomainAssessment is a credibility verdict for a single referenced domain
type DomainAssessment struct {
	Domain    string         `json:"domain"`              // Bare domain, e.g. "who.int"
	Score     int            `json:"score"`               // 0-100
	Category  SourceCategory `json:"category"`            // Credibility band
	Type      SourceType     `json:"type"`                // Kind of source
	Reasoning string         `json:"reasoning,omitempty"` // Why this score was assigned
}

// SourceCategory bands a domain score into a human-readable tier
type SourceCategory string

const (
	SourceHighlyCredible     SourceCategory = "highly_credible"
	SourceCredible           SourceCategory = "credible"
	SourceModeratelyCredible SourceCategory = "moderately_credible"
	SourceLowCredibility     SourceCategory = "low_credibility"
	SourceUnknownCredibility SourceCategory = "unknown"
)

// SourceType classifies what kind of publisher a domain is
type SourceType string

const (
	TypeNews            SourceType = "news"
	TypeHealth          SourceType = "health"
	TypeScience         SourceType = "science"
	TypeFactCheck       SourceType = "fact_check"
	TypeGovernment      SourceType = "government"
	TypeEducational     SourceType = "educational"
	TypeOrganization    SourceType = "organization"
	TypeSocial          SourceType = "social"
	TypeBlog            SourceType = "blog"
	TypeReference       SourceType = "reference"
	TypeContentAnalysis SourceType = "content_analysis"
	TypeUnknown         SourceType = "unknown"
)

// SourceCredibilityReport aggregates the per-domain assessments for one input
type SourceCredibilityReport struct {
	Domains           []DomainAssessment `json:"domains"`
	OverallScore      int                `json:"overall_score"`                // Mean of domain scores
	TrustedSources    []string           `json:"trusted_sources,omitempty"`    // Domains scoring >= 80
	SuspiciousSources []string           `json:"suspicious_sources,omitempty"` // Domains scoring < 50
	Analysis          string             `json:"analysis"`                     // One-line summary
}
