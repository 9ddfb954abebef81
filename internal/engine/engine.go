package engine

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veracitylab/veracity/internal/corpus"
	"github.com/veracitylab/veracity/internal/evidence"
	"github.com/veracitylab/veracity/internal/extract"
	"github.com/veracitylab/veracity/internal/llm"
	"github.com/veracitylab/veracity/internal/model"
	"github.com/veracitylab/veracity/internal/score"
	"github.com/veracitylab/veracity/internal/source"
)

// Corpus is the external corpus surface the engine depends on. The real
// implementation degrades internally; it never fails.
type Corpus interface {
	SearchFactCheckers(ctx context.Context, claimText string) []model.FactCheckResult
	VerifyNews(ctx context.Context, content string) model.NewsReport
}

// Options wires the engine's collaborators
type Options struct {
	Corpus           Corpus
	DomainTable      source.DomainTable
	Explainer        *llm.Explainer // nil disables explanations
	Logger           *zap.Logger
	FactCheckWorkers int
}

// Engine runs the complete credibility analysis pipeline
type Engine struct {
	extractor *extract.ClaimExtractor
	sources   *source.Analyzer
	corpus    Corpus
	scorer    *score.Scorer
	explainer *llm.Explainer
	logger    *zap.Logger
	workers   int
}

// New creates an engine from explicit collaborators
func New(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := opts.FactCheckWorkers
	if workers <= 0 {
		workers = 8
	}
	corpusClient := opts.Corpus
	if corpusClient == nil {
		corpusClient = corpus.NewClient(corpus.ClientOptions{Logger: logger})
	}

	return &Engine{
		extractor: extract.NewClaimExtractor(),
		sources:   source.NewAnalyzer(opts.DomainTable),
		corpus:    corpusClient,
		scorer:    score.NewScorer(),
		explainer: opts.Explainer,
		logger:    logger,
		workers:   workers,
	}
}

// NewFromConfig creates a fully wired engine. A missing LLM or provider
// configuration degrades to offline behavior instead of failing.
func NewFromConfig(cfg *model.Config, logger *zap.Logger) *Engine {
	opts := Options{
		Corpus:           corpus.NewClientFromConfig(cfg, logger),
		Logger:           logger,
		FactCheckWorkers: cfg.Concurrency.FactCheckWorkers,
	}

	if cfg.LLM.Provider != "" {
		explainer, err := llm.NewExplainer(cfg.LLM)
		if err != nil {
			logger.Warn("LLM explainer initialization failed", zap.Error(err))
		} else {
			opts.Explainer = explainer
		}
	}

	return New(opts)
}

// Analyze runs the full pipeline over the text. Source analysis, per-claim
// fact-check queries and news verification have no data dependency on each
// other and run concurrently, joining before the scorer. Provider outages
// surface as lower-confidence results, never as an error here.
func (e *Engine) Analyze(ctx context.Context, text string) (*model.Report, error) {
	started := time.Now().UTC()

	claims := e.extractor.Extract(text)

	var (
		wg           sync.WaitGroup
		sourceReport model.SourceCredibilityReport
		perClaim     = make([][]model.FactCheckResult, len(claims))
		news         model.NewsReport
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		sourceReport = e.sources.Assess(text)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		e.factCheckClaims(ctx, claims, perClaim)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		news = e.corpus.VerifyNews(ctx, text)
	}()

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	corrections := evidence.BuildCorrections(claims, perClaim)
	assessment := e.scorer.Score(sourceReport, perClaim, claims)

	report := &model.Report{
		ID:                 uuid.NewString(),
		AnalyzedAt:         started,
		InputChars:         len(text),
		Claims:             claims,
		SourceCredibility:  sourceReport,
		FactCheckResults:   perClaim,
		News:               news,
		Corrections:        corrections,
		OverallCredibility: assessment,
	}

	e.logger.Info("analysis complete",
		zap.String("report_id", report.ID),
		zap.Int("claims", len(claims)),
		zap.Int("corrections", len(corrections)),
		zap.Int("score", assessment.Score))

	// Narrative explanation comes last and never affects the score
	if e.explainer != nil {
		explanation, err := e.explainer.Explain(ctx, *report)
		if err != nil {
			e.logger.Warn("explanation generation failed", zap.Error(err))
		} else {
			report.Explanation = explanation
		}
	}

	return report, nil
}

// factCheckClaims fans per-claim corpus queries out over a bounded number
// of goroutines, writing results into their aligned slots
func (e *Engine) factCheckClaims(ctx context.Context, claims []model.Claim, perClaim [][]model.FactCheckResult) {
	if len(claims) == 0 {
		return
	}

	semaphore := make(chan struct{}, e.workers)
	var wg sync.WaitGroup

	for i, claim := range claims {
		wg.Add(1)
		go func(idx int, c model.Claim) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			perClaim[idx] = e.corpus.SearchFactCheckers(ctx, c.Text)
		}(i, claim)
	}

	wg.Wait()
}
