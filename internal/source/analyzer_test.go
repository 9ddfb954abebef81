package source

import (
	"testing"

	"github.com/veracitylab/veracity/internal/model"
)

func TestAnalyzer_KnownDomainFromTable(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	report := analyzer.Assess("See https://www.who.int/emergencies/disease-outbreak-news for details.")

	if len(report.Domains) != 1 {
		t.Fatalf("Expected 1 domain, got %d", len(report.Domains))
	}

	who := report.Domains[0]
	if who.Domain != "who.int" {
		t.Errorf("Expected domain 'who.int', got %q", who.Domain)
	}
	if who.Score != 99 {
		t.Errorf("Expected score 99, got %d", who.Score)
	}
	if who.Category != model.SourceHighlyCredible {
		t.Errorf("Expected highly_credible, got %s", who.Category)
	}

	foundTrusted := false
	for _, d := range report.TrustedSources {
		if d == "who.int" {
			foundTrusted = true
		}
	}
	if !foundTrusted {
		t.Error("Expected who.int in trusted sources")
	}
}

func TestAnalyzer_BareDomainMention(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	report := analyzer.Assess("As reported on reuters.com yesterday, markets fell.")

	if len(report.Domains) != 1 {
		t.Fatalf("Expected 1 domain, got %d", len(report.Domains))
	}
	if report.Domains[0].Domain != "reuters.com" {
		t.Errorf("Expected reuters.com, got %q", report.Domains[0].Domain)
	}
}

func TestAnalyzer_EmailNotADomain(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	report := analyzer.Assess("Contact tips@reuters.com for more information about this.")

	for _, d := range report.Domains {
		if d.Type != model.TypeContentAnalysis {
			t.Errorf("Expected no real domains from an email address, got %q", d.Domain)
		}
	}
}

func TestAnalyzer_HeuristicFallbacks(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	cases := []struct {
		domain   string
		score    int
		srcType  model.SourceType
		category model.SourceCategory
	}{
		{"ec.europa.gov", 95, model.TypeGovernment, model.SourceHighlyCredible},
		{"stanford.edu", 85, model.TypeEducational, model.SourceCredible},
		{"redcross.org", 70, model.TypeOrganization, model.SourceModeratelyCredible},
		{"myhealthblog.net", 40, model.TypeBlog, model.SourceLowCredibility},
		{"randomsite.net", 50, model.TypeUnknown, model.SourceUnknownCredibility},
	}

	for _, tc := range cases {
		assessment := analyzer.assessDomain(tc.domain)
		if assessment.Score != tc.score {
			t.Errorf("%s: expected score %d, got %d", tc.domain, tc.score, assessment.Score)
		}
		if assessment.Type != tc.srcType {
			t.Errorf("%s: expected type %s, got %s", tc.domain, tc.srcType, assessment.Type)
		}
		if assessment.Category != tc.category {
			t.Errorf("%s: expected category %s, got %s", tc.domain, tc.category, assessment.Category)
		}
	}
}

func TestAnalyzer_ContentPatternPath(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	report := analyzer.Assess("URGENT!!! Doctors confirm this secret cure works — click here now!")

	if len(report.Domains) != 1 {
		t.Fatalf("Expected exactly one synthetic assessment, got %d", len(report.Domains))
	}

	synthetic := report.Domains[0]
	if synthetic.Type != model.TypeContentAnalysis {
		t.Errorf("Expected content_analysis type, got %s", synthetic.Type)
	}
	// Sensational + conspiratorial + promotional all penalize
	if report.OverallScore >= 50 {
		t.Errorf("Expected overall score < 50, got %d", report.OverallScore)
	}
	if synthetic.Score < 10 {
		t.Errorf("Score must be clamped to >= 10, got %d", synthetic.Score)
	}
}

func TestAnalyzer_ContentPatternRewardsResearch(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	report := analyzer.Assess("A peer-reviewed study led by Dr. Chen examined outcomes across several hospitals.")

	if len(report.Domains) != 1 {
		t.Fatalf("Expected one synthetic assessment, got %d", len(report.Domains))
	}
	// 60 base + 15 research + 10 expert quote
	if report.OverallScore != 85 {
		t.Errorf("Expected score 85, got %d", report.OverallScore)
	}
}

func TestAnalyzer_Deterministic(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	text := "Compare bbc.com and someblog.wordpress.com coverage of the vote."

	first := analyzer.Assess(text)
	second := analyzer.Assess(text)

	if len(first.Domains) != len(second.Domains) {
		t.Fatalf("Domain counts differ: %d vs %d", len(first.Domains), len(second.Domains))
	}
	for i := range first.Domains {
		if first.Domains[i] != second.Domains[i] {
			t.Errorf("Assessment %d differs between runs: %+v vs %+v",
				i, first.Domains[i], second.Domains[i])
		}
	}
	if first.OverallScore != second.OverallScore {
		t.Errorf("Overall scores differ: %d vs %d", first.OverallScore, second.OverallScore)
	}
}

func TestAnalyzer_MixedDomainsMean(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	report := analyzer.Assess("Sources: https://reuters.com/article and https://facebook.com/post about it.")

	if len(report.Domains) != 2 {
		t.Fatalf("Expected 2 domains, got %d", len(report.Domains))
	}
	// (95 + 35) / 2
	if report.OverallScore != 65 {
		t.Errorf("Expected overall 65, got %d", report.OverallScore)
	}
	if len(report.TrustedSources) != 1 || report.TrustedSources[0] != "reuters.com" {
		t.Errorf("Expected reuters.com trusted, got %v", report.TrustedSources)
	}
	if len(report.SuspiciousSources) != 1 || report.SuspiciousSources[0] != "facebook.com" {
		t.Errorf("Expected facebook.com suspicious, got %v", report.SuspiciousSources)
	}
}
