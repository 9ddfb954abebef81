package source

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/veracitylab/veracity/internal/model"
)

var (
	urlPattern = regexp.MustCompile(`https?://[^\s<>"')]+`)
	// Bare domain mention: dotted token ending in a 2+ letter TLD.
	// Email addresses are excluded before this pattern is applied.
	domainPattern = regexp.MustCompile(`(?i)^([a-z0-9][a-z0-9-]*\.)+[a-z]{2,}$`)
)

// Analyzer scores the credibility of sources referenced in text
type Analyzer struct {
	table DomainTable
}

// NewAnalyzer creates an analyzer backed by the given reference table
func NewAnalyzer(table DomainTable) *Analyzer {
	if table == nil {
		table = DefaultDomainTable()
	}
	return &Analyzer{table: table}
}

// Assess extracts referenced domains from the text and scores each one.
// When no domain is present it falls back to a content-pattern heuristic,
// producing a single synthetic content-analysis assessment.
func (a *Analyzer) Assess(text string) model.SourceCredibilityReport {
	domains := extractDomains(text)

	if len(domains) == 0 {
		assessment := assessContent(text)
		return model.SourceCredibilityReport{
			Domains:           []model.DomainAssessment{assessment},
			OverallScore:      assessment.Score,
			SuspiciousSources: suspiciousFrom([]model.DomainAssessment{assessment}),
			TrustedSources:    trustedFrom([]model.DomainAssessment{assessment}),
			Analysis:          "No sources referenced; assessment is based on content patterns only",
		}
	}

	assessments := make([]model.DomainAssessment, 0, len(domains))
	total := 0
	for _, domain := range domains {
		assessment := a.assessDomain(domain)
		assessments = append(assessments, assessment)
		total += assessment.Score
	}

	trusted := trustedFrom(assessments)
	suspicious := suspiciousFrom(assessments)

	return model.SourceCredibilityReport{
		Domains:           assessments,
		OverallScore:      total / len(assessments),
		TrustedSources:    trusted,
		SuspiciousSources: suspicious,
		Analysis: fmt.Sprintf("Found %d source(s): %d trusted, %d suspicious",
			len(assessments), len(trusted), len(suspicious)),
	}
}

// assessDomain looks up the reference table, falling back to TLD and
// name heuristics for unknown domains
func (a *Analyzer) assessDomain(domain string) model.DomainAssessment {
	if entry, ok := a.lookup(domain); ok {
		return model.DomainAssessment{
			Domain:    domain,
			Score:     entry.Score,
			Category:  entry.Category,
			Type:      entry.Type,
			Reasoning: "Known source from the reference table",
		}
	}

	assessment := model.DomainAssessment{Domain: domain}
	switch {
	case strings.HasSuffix(domain, ".gov"):
		assessment.Score = 95
		assessment.Category = model.SourceHighlyCredible
		assessment.Type = model.TypeGovernment
		assessment.Reasoning = "Government domain"
	case strings.HasSuffix(domain, ".edu"):
		assessment.Score = 85
		assessment.Category = model.SourceCredible
		assessment.Type = model.TypeEducational
		assessment.Reasoning = "Educational institution domain"
	case strings.HasSuffix(domain, ".org"):
		assessment.Score = 70
		assessment.Category = model.SourceModeratelyCredible
		assessment.Type = model.TypeOrganization
		assessment.Reasoning = "Organization domain"
	case containsAny(domain, []string{"blog", "wordpress", "blogspot"}):
		assessment.Score = 40
		assessment.Category = model.SourceLowCredibility
		assessment.Type = model.TypeBlog
		assessment.Reasoning = "Blog platform"
	case containsAny(domain, socialPlatforms):
		assessment.Score = 35
		assessment.Category = model.SourceLowCredibility
		assessment.Type = model.TypeSocial
		assessment.Reasoning = "Social media platform"
	default:
		assessment.Score = 50
		assessment.Category = model.SourceUnknownCredibility
		assessment.Type = model.TypeUnknown
		assessment.Reasoning = "Unknown domain, neutral score"
	}
	return assessment
}

// lookup checks the table for the domain or a registrable suffix of it,
// so www.who.int and emergencies.who.int both resolve who.int
func (a *Analyzer) lookup(domain string) (DomainEntry, bool) {
	if entry, ok := a.table[domain]; ok {
		return entry, true
	}
	for known, entry := range a.table {
		if strings.HasSuffix(domain, "."+known) {
			return entry, true
		}
	}
	return DomainEntry{}, false
}

// Content-pattern heuristics for input with no referenced domains.
var (
	researchPattern      = regexp.MustCompile(`(?i)\b(research|study|studies|peer.?review(ed)?|journal|clinical trial)\b`)
	expertQuotePattern   = regexp.MustCompile(`(Dr\.?|Professor|Prof\.)\s+[A-Z][a-z]+`)
	sensationalPattern   = regexp.MustCompile(`\b(URGENT|WARNING|BREAKING|SHOCKING|ALERT|MUST READ)\b`)
	conspiracyPattern    = regexp.MustCompile(`(?i)(they don't want you to know|cover.?up|secret|suppressed|hidden truth)`)
	promotionalPattern   = regexp.MustCompile(`(?i)(click here|act now|limited time|buy now|share now)`)
)

// assessContent scores text with no referenced domains on writing patterns alone
func assessContent(text string) model.DomainAssessment {
	score := 60
	var notes []string

	if researchPattern.MatchString(text) {
		score += 15
		notes = append(notes, "references research")
	}
	if expertQuotePattern.MatchString(text) {
		score += 10
		notes = append(notes, "quotes named experts")
	}
	if sensationalPattern.MatchString(text) {
		score -= 20
		notes = append(notes, "sensationalized language")
	}
	if conspiracyPattern.MatchString(text) {
		score -= 25
		notes = append(notes, "conspiratorial phrasing")
	}
	if promotionalPattern.MatchString(text) {
		score -= 15
		notes = append(notes, "promotional phrasing")
	}

	if score < 10 {
		score = 10
	}
	if score > 100 {
		score = 100
	}

	reasoning := "Content-pattern assessment"
	if len(notes) > 0 {
		reasoning += ": " + strings.Join(notes, ", ")
	}

	return model.DomainAssessment{
		Domain:    "content-analysis",
		Score:     score,
		Category:  bandFor(score),
		Type:      model.TypeContentAnalysis,
		Reasoning: reasoning,
	}
}

// bandFor maps a numeric score onto a credibility band
func bandFor(score int) model.SourceCategory {
	switch {
	case score >= 80:
		return model.SourceHighlyCredible
	case score >= 65:
		return model.SourceCredible
	case score >= 50:
		return model.SourceModeratelyCredible
	default:
		return model.SourceLowCredibility
	}
}

// extractDomains pulls every distinct domain out of the text: full URLs
// first, then bare domain mentions. Malformed URLs are skipped silently.
func extractDomains(text string) []string {
	seen := make(map[string]bool)
	var domains []string

	add := func(domain string) {
		domain = strings.ToLower(strings.TrimPrefix(domain, "www."))
		if domain == "" || seen[domain] {
			return
		}
		seen[domain] = true
		domains = append(domains, domain)
	}

	for _, raw := range urlPattern.FindAllString(text, -1) {
		parsed, err := url.Parse(strings.TrimRight(raw, ".,;:!?"))
		if err != nil || parsed.Hostname() == "" {
			continue
		}
		add(parsed.Hostname())
	}

	// Bare mentions: strip URLs first so their hosts are not double-counted
	stripped := urlPattern.ReplaceAllString(text, " ")
	for _, token := range strings.Fields(stripped) {
		token = strings.Trim(token, `.,;:!?"'()[]<>`)
		if strings.Contains(token, "@") {
			continue
		}
		if domainPattern.MatchString(token) {
			add(token)
		}
	}

	sort.Strings(domains)
	return domains
}

func trustedFrom(assessments []model.DomainAssessment) []string {
	var trusted []string
	for _, a := range assessments {
		if a.Score >= 80 {
			trusted = append(trusted, a.Domain)
		}
	}
	return trusted
}

func suspiciousFrom(assessments []model.DomainAssessment) []string {
	var suspicious []string
	for _, a := range assessments {
		if a.Score < 50 {
			suspicious = append(suspicious, a.Domain)
		}
	}
	return suspicious
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
