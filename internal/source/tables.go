package source

import "github.com/veracitylab/veracity/internal/model"

// DomainEntry is the pre-assigned verdict for a well-known domain
type DomainEntry struct {
	Score    int                  `yaml:"score"`
	Category model.SourceCategory `yaml:"category"`
	Type     model.SourceType     `yaml:"type"`
}

// DomainTable maps bare domains to pre-assigned credibility verdicts.
// Loaded once at startup and injected, never mutated afterwards.
type DomainTable map[string]DomainEntry

// DefaultDomainTable returns the built-in reference table of well-known
// domains: wire services, health and science agencies, fact-check
// organizations, major social platforms and Wikipedia.
func DefaultDomainTable() DomainTable {
	return DomainTable{
		// News agencies and broadsheets
		"reuters.com":     {95, model.SourceHighlyCredible, model.TypeNews},
		"apnews.com":      {94, model.SourceHighlyCredible, model.TypeNews},
		"bbc.com":         {92, model.SourceHighlyCredible, model.TypeNews},
		"npr.org":         {90, model.SourceHighlyCredible, model.TypeNews},
		"nytimes.com":     {88, model.SourceCredible, model.TypeNews},
		"theguardian.com": {86, model.SourceCredible, model.TypeNews},

		// Health and science agencies
		"who.int":    {99, model.SourceHighlyCredible, model.TypeHealth},
		"cdc.gov":    {97, model.SourceHighlyCredible, model.TypeHealth},
		"nih.gov":    {96, model.SourceHighlyCredible, model.TypeHealth},
		"nature.com": {94, model.SourceHighlyCredible, model.TypeScience},
		"science.org": {93, model.SourceHighlyCredible, model.TypeScience},

		// Fact-check organizations
		"factcheck.org":  {91, model.SourceHighlyCredible, model.TypeFactCheck},
		"snopes.com":     {90, model.SourceHighlyCredible, model.TypeFactCheck},
		"politifact.com": {89, model.SourceCredible, model.TypeFactCheck},
		"fullfact.org":   {88, model.SourceCredible, model.TypeFactCheck},

		// Reference
		"wikipedia.org": {75, model.SourceModeratelyCredible, model.TypeReference},

		// Social platforms
		"facebook.com":  {35, model.SourceLowCredibility, model.TypeSocial},
		"twitter.com":   {35, model.SourceLowCredibility, model.TypeSocial},
		"x.com":         {35, model.SourceLowCredibility, model.TypeSocial},
		"instagram.com": {35, model.SourceLowCredibility, model.TypeSocial},
		"youtube.com":   {40, model.SourceLowCredibility, model.TypeSocial},
		"reddit.com":    {40, model.SourceLowCredibility, model.TypeSocial},
	}
}

// socialPlatforms covers platforms not in the table (heuristic fallback)
var socialPlatforms = []string{
	"facebook", "twitter", "instagram", "tiktok", "youtube", "reddit",
	"telegram", "whatsapp",
}
