package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/veracitylab/veracity/internal/engine"
	"github.com/veracitylab/veracity/internal/model"
	"github.com/veracitylab/veracity/internal/pipeline"
	"github.com/veracitylab/veracity/internal/worker"
)

var (
	batchOutputDir   string
	batchConcurrency int
	batchTimeout     time.Duration
)

// batchCmd analyzes many inputs from a file, one per line
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze many inputs from a file concurrently",
	Long: `Batch reads one input per line (free text or a URL, blank lines and
'#' comments skipped) and analyzes them concurrently. Each report is
written as JSON into the output directory.

Example:
  veracity batch inputs.txt --output-dir reports --concurrency 4`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVar(&batchOutputDir, "output-dir", "reports", "directory for per-input JSON reports")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "concurrent analyses (0 = config default)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Minute, "overall batch timeout")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the provider response cache")
}

func runBatch(cmd *cobra.Command, args []string) error {
	inputs, err := worker.ReadInputs(args[0])
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no inputs found in %s", args[0])
	}

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := buildRunConfig()
	concurrency := batchConcurrency
	if concurrency <= 0 {
		concurrency = cfg.Concurrency.Workers
	}

	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	if err := os.MkdirAll(batchOutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	analyzer := &inputAnalyzer{
		engine: engine.NewFromConfig(cfg, logger),
		fetcher: pipeline.NewFetcher(
			cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes,
			cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy,
		),
	}

	fmt.Printf("Analyzing %d inputs with %d workers...\n", len(inputs), concurrency)
	start := time.Now()

	results := worker.NewBatchProcessor(analyzer, concurrency).Process(ctx, inputs)

	succeeded := 0
	for _, res := range results {
		if res.Error != nil {
			logger.Warn("input failed", zap.String("input", truncate(res.Input, 80)), zap.Error(res.Error))
			fmt.Fprintf(os.Stderr, "FAIL  %s: %v\n", truncate(res.Input, 60), res.Error)
			continue
		}
		path := filepath.Join(batchOutputDir, res.Report.ID+".json")
		if err := writeJSONReport(res.Report, path); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL  %s: %v\n", truncate(res.Input, 60), err)
			continue
		}
		fmt.Printf("OK    %-3d %s  %s\n", res.Report.OverallCredibility.Score, truncate(res.Input, 60), path)
		succeeded++
	}

	fmt.Printf("\nDone: %d/%d succeeded in %s\n", succeeded, len(results), time.Since(start).Round(time.Millisecond))
	if succeeded < len(results) {
		return fmt.Errorf("%d of %d inputs failed", len(results)-succeeded, len(results))
	}
	return nil
}

// inputAnalyzer adapts the engine for batch inputs. Lines that look like
// URLs are fetched first; everything else is analyzed as free text.
type inputAnalyzer struct {
	engine  *engine.Engine
	fetcher *pipeline.Fetcher
}

func (a *inputAnalyzer) AnalyzeInput(ctx context.Context, input string) (*model.Report, error) {
	if isURL(input) {
		fetched, err := a.fetcher.FetchText(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", input, err)
		}
		report, err := a.engine.Analyze(ctx, fetched.Text)
		if err != nil {
			return nil, err
		}
		report.SourceURL = fetched.FinalURL
		return report, nil
	}
	return a.engine.Analyze(ctx, input)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
