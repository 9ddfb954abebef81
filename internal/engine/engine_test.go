package engine

import (
	"context"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/veracitylab/veracity/internal/model"
)

// recordingCorpus captures queries and serves canned results
type recordingCorpus struct {
	mu        sync.Mutex
	queries   []string
	results   map[string][]model.FactCheckResult
	newsCalls int
}

func (r *recordingCorpus) SearchFactCheckers(_ context.Context, claimText string) []model.FactCheckResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, claimText)
	if results, ok := r.results[claimText]; ok {
		return results
	}
	return []model.FactCheckResult{{
		Source: "veracity-internal", Rating: model.RatingUnverified,
		Confidence: 60, Relevance: 0.5,
	}}
}

func (r *recordingCorpus) VerifyNews(_ context.Context, _ string) model.NewsReport {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.newsCalls++
	return model.NewsReport{TotalArticles: 0, AverageCredibility: 85}
}

func TestEngine_AnalyzeComposesReport(t *testing.T) {
	corpus := &recordingCorpus{results: map[string][]model.FactCheckResult{}}
	eng := New(Options{Corpus: corpus, Logger: zap.NewNop()})

	text := "Experts claim the vaccine prevents most virus infections. See https://www.who.int/news for details."
	report, err := eng.Analyze(context.Background(), text)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	if report.ID == "" {
		t.Error("Expected a report ID")
	}
	if len(report.Claims) == 0 {
		t.Fatal("Expected extracted claims")
	}
	if len(report.FactCheckResults) != len(report.Claims) {
		t.Errorf("Fact-check results not aligned: %d results for %d claims",
			len(report.FactCheckResults), len(report.Claims))
	}
	for i, results := range report.FactCheckResults {
		if len(results) == 0 {
			t.Errorf("Claim %d has an empty result list", i)
		}
	}
	if corpus.newsCalls != 1 {
		t.Errorf("Expected one news verification, got %d", corpus.newsCalls)
	}
	if len(report.SourceCredibility.Domains) == 0 {
		t.Error("Expected source assessments")
	}
	if report.OverallCredibility.Score < 5 || report.OverallCredibility.Score > 95 {
		t.Errorf("Score out of bounds: %d", report.OverallCredibility.Score)
	}
}

func TestEngine_FalseResultYieldsCorrection(t *testing.T) {
	claimSentence := "Doctors confirm the covid vaccine contains a microchip in every dose."
	corpus := &recordingCorpus{results: map[string][]model.FactCheckResult{
		claimSentence: {{
			Source:     "Reuters Fact Check",
			Rating:     model.RatingFalse,
			Summary:    "Vaccines do not contain microchips.",
			Confidence: 100,
			Relevance:  0.9,
		}},
	}}
	eng := New(Options{Corpus: corpus, Logger: zap.NewNop()})

	report, err := eng.Analyze(context.Background(), claimSentence)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	if len(report.Corrections) != 1 {
		t.Fatalf("Expected exactly 1 correction, got %d", len(report.Corrections))
	}
	if report.Corrections[0].Issue != "This claim is false" {
		t.Errorf("Expected 'This claim is false', got %q", report.Corrections[0].Issue)
	}
	if !strings.Contains(report.Corrections[0].Evidence, "Reuters Fact Check") {
		t.Errorf("Evidence should name the source, got %q", report.Corrections[0].Evidence)
	}
}

func TestEngine_NoClaimsStillScores(t *testing.T) {
	corpus := &recordingCorpus{}
	eng := New(Options{Corpus: corpus, Logger: zap.NewNop()})

	// No sentence clears the claim threshold
	report, err := eng.Analyze(context.Background(), "A quiet afternoon walk through the park was pleasant.")
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	if len(report.Claims) != 0 {
		t.Fatalf("Expected no claims, got %d", len(report.Claims))
	}
	if report.OverallCredibility.Breakdown.ClaimsVerification != 0 {
		t.Errorf("Expected claims component 0, got %d",
			report.OverallCredibility.Breakdown.ClaimsVerification)
	}
	if report.OverallCredibility.ConfidenceWeight >= 1.0 {
		t.Errorf("Expected confidence weight < 1.0, got %.2f",
			report.OverallCredibility.ConfidenceWeight)
	}
	// The content-pattern source component still computes
	if len(report.SourceCredibility.Domains) != 1 {
		t.Errorf("Expected synthetic content assessment, got %d domains",
			len(report.SourceCredibility.Domains))
	}
	if len(corpus.queries) != 0 {
		t.Errorf("Expected no fact-check queries without claims, got %d", len(corpus.queries))
	}
}

func TestEngine_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eng := New(Options{Corpus: &recordingCorpus{}, Logger: zap.NewNop()})

	if _, err := eng.Analyze(ctx, "Experts claim inflation is higher than 10 percent."); err == nil {
		t.Error("Expected error for cancelled context")
	}
}

func TestEngine_PerClaimQueriesUseClaimText(t *testing.T) {
	corpus := &recordingCorpus{}
	eng := New(Options{Corpus: corpus, Logger: zap.NewNop()})

	text := "Experts claim the vaccine prevents most virus infections in adults. " +
		"Researchers found inflation is higher than 10 percent across the market."
	report, err := eng.Analyze(context.Background(), text)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	if len(corpus.queries) != len(report.Claims) {
		t.Fatalf("Expected one query per claim, got %d for %d claims",
			len(corpus.queries), len(report.Claims))
	}
	queried := make(map[string]bool, len(corpus.queries))
	for _, q := range corpus.queries {
		queried[q] = true
	}
	for _, claim := range report.Claims {
		if !queried[claim.Text] {
			t.Errorf("Claim %q was never queried", claim.Text)
		}
	}
}
