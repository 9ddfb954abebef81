package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/veracitylab/veracity/internal/engine"
	"github.com/veracitylab/veracity/internal/model"
	"github.com/veracitylab/veracity/internal/pipeline"
)

var (
	inputFile  string
	outJSON    string
	runTimeout time.Duration
	noCache    bool
	llmEnabled bool
	llmModel   string
)

// analyzeCmd analyzes free-form text
var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Analyze the credibility of a piece of text",
	Long: `Analyze extracts checkable claims, scores referenced sources, queries
fact-check and news corpora, and reports a weighted credibility score
with corrections for claims found false or misleading.

Example:
  veracity analyze "Scientists say the new treatment cures 90% of cases."
  veracity analyze --file article.txt --json report.json
  veracity analyze --file article.txt --llm`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

// analyzeURLCmd fetches a page and analyzes its visible text
var analyzeURLCmd = &cobra.Command{
	Use:   "analyze-url <url>",
	Short: "Fetch a web page and analyze its content",
	Long: `Analyze-url downloads the page (honoring robots.txt), strips it to
visible text and runs the same credibility analysis as 'analyze'.

Example:
  veracity analyze-url https://example.com/article --json report.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyzeURL,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(analyzeURLCmd)

	for _, cmd := range []*cobra.Command{analyzeCmd, analyzeURLCmd} {
		cmd.Flags().StringVar(&outJSON, "json", "", "write the full JSON report to this path")
		cmd.Flags().DurationVar(&runTimeout, "timeout", 2*time.Minute, "overall analysis timeout")
		cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the provider response cache")
		cmd.Flags().BoolVar(&llmEnabled, "llm", false, "generate a plain-language explanation (needs OPENAI_API_KEY)")
		cmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model for explanations")
	}
	analyzeCmd.Flags().StringVar(&inputFile, "file", "", "read the text to analyze from a file")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text := ""
	switch {
	case inputFile != "":
		raw, err := os.ReadFile(inputFile)
		if err != nil {
			return fmt.Errorf("read input file: %w", err)
		}
		text = string(raw)
	case len(args) == 1:
		text = args[0]
	default:
		return fmt.Errorf("provide text as an argument or via --file")
	}

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	cfg := buildRunConfig()
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	report, err := engine.NewFromConfig(cfg, logger).Analyze(ctx, text)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	return renderReport(report, outJSON)
}

func runAnalyzeURL(cmd *cobra.Command, args []string) error {
	url := args[0]

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	cfg := buildRunConfig()
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	fetcher := pipeline.NewFetcher(
		cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes,
		cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy,
	)
	fetched, err := fetcher.FetchText(ctx, url)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}

	report, err := engine.NewFromConfig(cfg, logger).Analyze(ctx, fetched.Text)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	report.SourceURL = fetched.FinalURL

	return renderReport(report, outJSON)
}

// buildRunConfig merges config sources with the analyze flags
func buildRunConfig() *model.Config {
	cfg := loadConfig()
	cfg.Output.Verbose = verbose
	if noCache {
		cfg.Cache.Enabled = false
	}
	if llmEnabled {
		cfg.LLM.Provider = "openai"
		cfg.LLM.Model = llmModel
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			fmt.Fprintln(os.Stderr, "Warning: OPENAI_API_KEY not set, skipping explanation")
			cfg.LLM.Provider = ""
		}
	}
	return cfg
}
