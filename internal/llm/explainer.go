package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/veracitylab/veracity/internal/model"
)

// Provider generates a plain-language narrative for a finished report.
// Explanations are produced after scoring and never feed back into it.
type Provider interface {
	Name() string
	Explain(ctx context.Context, req ExplainRequest) (*ExplainResponse, error)
}

// ExplainRequest carries the report to narrate
type ExplainRequest struct {
	Report    model.Report
	Model     string
	MaxTokens int
}

// ExplainResponse is the generated narrative
type ExplainResponse struct {
	Text  string
	Model string
}

// Explainer wraps a provider with the assembly logic
type Explainer struct {
	provider Provider
	config   model.LLMConfig
}

// NewExplainer builds an explainer from configuration; returns an error if
// the configured provider is unknown
func NewExplainer(cfg model.LLMConfig) (*Explainer, error) {
	switch cfg.Provider {
	case "openai":
		provider, err := NewOpenAIProvider(cfg)
		if err != nil {
			return nil, err
		}
		return &Explainer{provider: provider, config: cfg}, nil
	case "":
		return nil, fmt.Errorf("no LLM provider configured")
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
}

// Explain generates the narrative for a finished report
func (e *Explainer) Explain(ctx context.Context, report model.Report) (*model.Explanation, error) {
	resp, err := e.provider.Explain(ctx, ExplainRequest{
		Report:    report,
		Model:     e.config.Model,
		MaxTokens: e.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate explanation: %w", err)
	}
	return &model.Explanation{
		Provider: e.provider.Name(),
		Model:    resp.Model,
		Text:     resp.Text,
	}, nil
}

// BuildPrompt renders the report facts the narrative must stick to
func BuildPrompt(report model.Report) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `You are explaining an automated credibility assessment. Describe the
evidence, never assert truth beyond what the listed fact-checks state.

Overall credibility: %d/100 (confidence weight %.2f)
Breakdown: source %d, fact-check consensus %d, claims %d
Claims analyzed: %d
Corrections issued: %d
Source summary: %s

`,
		report.OverallCredibility.Score,
		report.OverallCredibility.ConfidenceWeight,
		report.OverallCredibility.Breakdown.SourceCredibility,
		report.OverallCredibility.Breakdown.FactCheckConsensus,
		report.OverallCredibility.Breakdown.ClaimsVerification,
		len(report.Claims),
		len(report.Corrections),
		report.SourceCredibility.Analysis,
	)

	for i, correction := range report.Corrections {
		if i >= 3 {
			fmt.Fprintf(&sb, "... and %d more corrections\n", len(report.Corrections)-3)
			break
		}
		fmt.Fprintf(&sb, "- %s (%s, per %s)\n", correction.OriginalClaim, correction.Issue, correction.Source)
	}

	sb.WriteString("\nWrite a 3-4 sentence plain-language summary of these findings.")
	return sb.String()
}
