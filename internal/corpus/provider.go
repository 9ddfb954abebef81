package corpus

import (
	"context"
	"time"
)

// FactCheckProvider searches a professional fact-check corpus.
// Implementations return provider-native tuples; the client converts them
// into the canonical model at this boundary so no downstream code branches
// on provider identity.
type FactCheckProvider interface {
	Name() string
	// BaseURL is the endpoint the provider actually calls; the client keys
	// its per-host rate limiting on it
	BaseURL() string
	Search(ctx context.Context, query string) ([]ProviderClaim, error)
}

// ProviderClaim is a provider-native fact-check tuple
type ProviderClaim struct {
	ClaimText  string
	Publisher  string
	Rating     string // Free-text rating in the provider's own vocabulary
	URL        string
	ReviewDate *time.Time
}

// NewsProvider searches a news corpus for recent coverage
type NewsProvider interface {
	Name() string
	// BaseURL is the endpoint the provider actually calls; the client keys
	// its per-host rate limiting on it
	BaseURL() string
	Search(ctx context.Context, query string, from time.Time) ([]ProviderArticle, error)
}

// ProviderArticle is a provider-native article tuple
type ProviderArticle struct {
	SourceName  string
	Title       string
	URL         string
	PublishedAt time.Time
}
