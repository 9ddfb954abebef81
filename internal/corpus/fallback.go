package corpus

import (
	"strings"

	"github.com/veracitylab/veracity/internal/model"
)

// DebunkedEntry is one row of the known-debunked-claims reference table,
// used only as the final fallback when no provider yields results.
type DebunkedEntry struct {
	ClaimSubstring string       `yaml:"claim"`
	Source         string       `yaml:"source"`
	Rating         model.Rating `yaml:"rating"`
	Summary        string       `yaml:"summary"`
	URL            string       `yaml:"url"`
	Confidence     int          `yaml:"confidence"`
}

// DebunkedTable is the internal reference table of well-known debunked claims
type DebunkedTable []DebunkedEntry

// DefaultDebunkedTable returns the built-in table. Matching is
// case-insensitive substring against the query.
func DefaultDebunkedTable() DebunkedTable {
	return DebunkedTable{
		{
			ClaimSubstring: "vaccine contains a microchip",
			Source:         "Reuters Fact Check",
			Rating:         model.RatingFalse,
			Summary:        "COVID-19 vaccines do not contain microchips; vials and ingredients lists have been inspected by independent researchers.",
			URL:            "https://www.reuters.com/article/factcheck-coronavirus-microchip",
			Confidence:     100,
		},
		{
			ClaimSubstring: "5g causes covid",
			Source:         "Full Fact",
			Rating:         model.RatingFalse,
			Summary:        "Viruses cannot travel on radio waves; COVID-19 spread in countries without any 5G coverage.",
			URL:            "https://fullfact.org/online/5g-covid",
			Confidence:     100,
		},
		{
			ClaimSubstring: "earth is flat",
			Source:         "Snopes",
			Rating:         model.RatingFalse,
			Summary:        "The shape of the Earth is an oblate spheroid, established by centuries of observation and direct measurement.",
			URL:            "https://www.snopes.com/fact-check/flat-earth",
			Confidence:     100,
		},
		{
			ClaimSubstring: "drinking bleach",
			Source:         "FactCheck.org",
			Rating:         model.RatingFalse,
			Summary:        "Ingesting bleach or other disinfectants is dangerous and does not treat any illness.",
			URL:            "https://www.factcheck.org/2020/04/bleach-ingestion",
			Confidence:     100,
		},
		{
			ClaimSubstring: "climate change is a hoax",
			Source:         "PolitiFact",
			Rating:         model.RatingFalse,
			Summary:        "Multiple independent temperature records and peer-reviewed studies confirm the climate is warming due to human activity.",
			URL:            "https://www.politifact.com/factchecks/climate-hoax",
			Confidence:     95,
		},
		{
			ClaimSubstring: "vaccines cause autism",
			Source:         "Snopes",
			Rating:         model.RatingFalse,
			Summary:        "Large epidemiological studies have found no link between vaccination and autism; the original study was retracted for fraud.",
			URL:            "https://www.snopes.com/fact-check/vaccines-autism",
			Confidence:     100,
		},
	}
}

// Match returns normalized results for every table entry whose substring
// occurs in the query
func (t DebunkedTable) Match(query string) []model.FactCheckResult {
	lower := strings.ToLower(query)

	var results []model.FactCheckResult
	for _, entry := range t {
		if !strings.Contains(lower, entry.ClaimSubstring) {
			continue
		}
		results = append(results, model.FactCheckResult{
			Source:     entry.Source,
			Rating:     NormalizeRating(string(entry.Rating)),
			Summary:    entry.Summary,
			URL:        entry.URL,
			Confidence: entry.Confidence,
			Relevance:  Relevance(query, entry.ClaimSubstring),
		})
	}
	return results
}
