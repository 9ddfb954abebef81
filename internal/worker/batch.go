package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/veracitylab/veracity/internal/model"
)

// Analyzer runs one credibility analysis for a single input line
// (free text or a URL, the implementation decides)
type Analyzer interface {
	AnalyzeInput(ctx context.Context, input string) (*model.Report, error)
}

// AnalyzeJob analyzes a single input
type AnalyzeJob struct {
	Input    string
	Analyzer Analyzer
}

// Execute runs the analysis
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	report, err := j.Analyzer.AnalyzeInput(ctx, j.Input)
	return &AnalyzeResult{Input: j.Input, Report: report, Error: err}
}

// AnalyzeResult is the outcome of one batch input
type AnalyzeResult struct {
	Input  string
	Report *model.Report
	Error  error
}

// GetError returns the job error, if any
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes many inputs concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{analyzer: analyzer, concurrency: concurrency}
}

// Process analyzes all inputs and returns one result per input
func (b *BatchProcessor) Process(ctx context.Context, inputs []string) []*AnalyzeResult {
	if len(inputs) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, input := range inputs {
		pool.Submit(&AnalyzeJob{Input: input, Analyzer: b.analyzer})
	}

	raw := pool.Wait()
	results := make([]*AnalyzeResult, 0, len(raw))
	for _, r := range raw {
		if ar, ok := r.(*AnalyzeResult); ok {
			results = append(results, ar)
		}
	}

	// Respect caller cancellation: surface it on missing results
	if err := ctx.Err(); err != nil {
		for i := len(results); i < len(inputs); i++ {
			results = append(results, &AnalyzeResult{Error: err})
		}
	}

	return results
}

// ReadInputs reads one input per line from a file, skipping blanks and comments
func ReadInputs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var inputs []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}
	return inputs, nil
}
