package corpus

import "strings"

// Outlet credibility heuristic for news sources that have no domain to look
// up: wire services and broadsheets score high, partisan and tabloid outlets
// lower, generic blogs and aggregators lower still.
var outletScores = map[string]int{
	"reuters":             97,
	"associated press":    95,
	"bbc news":            93,
	"bbc":                 93,
	"npr":                 90,
	"the new york times":  88,
	"the washington post": 87,
	"the guardian":        86,
	"cnn":                 78,
	"fox news":            70,
	"daily mail":          68,
	"new york post":       70,
	"buzzfeed news":       72,
	"huffpost":            70,
}

const (
	defaultOutletScore    = 60
	blogAggregatorScore   = 55
	tabloidKeywordScore   = 70
)

// outletCredibility scores a news source by name
func outletCredibility(sourceName string) int {
	name := strings.ToLower(strings.TrimSpace(sourceName))
	if name == "" {
		return defaultOutletScore
	}

	if score, ok := outletScores[name]; ok {
		return score
	}

	switch {
	case strings.Contains(name, "blog") || strings.Contains(name, "aggregator") ||
		strings.Contains(name, "medium"):
		return blogAggregatorScore
	case strings.Contains(name, "tabloid") || strings.Contains(name, "daily"):
		return tabloidKeywordScore
	default:
		return defaultOutletScore
	}
}
