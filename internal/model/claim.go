package model

// Claim represents a checkable factual assertion extracted from the input text
type Claim struct {
	Text       string        `json:"text"`               // The claim sentence itself
	Category   ClaimCategory `json:"category"`           // Topic category from keyword sniffing
	Confidence float64       `json:"confidence"`         // 0.0-1.0, how claim-like the sentence is
	Keywords   []string      `json:"keywords,omitempty"` // Up to 5 significant words, document order
}

// ClaimCategory classifies the topic of a claim
type ClaimCategory string

const (
	CategoryHealth      ClaimCategory = "health"
	CategoryEnvironment ClaimCategory = "environment"
	CategoryPolitical   ClaimCategory = "political"
	CategoryEconomic    ClaimCategory = "economic"
	CategoryGeneral     ClaimCategory = "general"
)

// TopKeywords returns up to n keywords from the claim
func (c Claim) TopKeywords(n int) []string {
	if n <= 0 || len(c.Keywords) == 0 {
		return nil
	}
	if n > len(c.Keywords) {
		n = len(c.Keywords)
	}
	return c.Keywords[:n]
}
