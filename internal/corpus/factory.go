package corpus

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/veracitylab/veracity/internal/cache"
	"github.com/veracitylab/veracity/internal/model"
	"github.com/veracitylab/veracity/internal/worker"
)

// NewClientFromConfig assembles a corpus client from configuration.
// Missing API keys simply leave the corresponding provider unset; the
// client then serves that path from reference data (offline mode).
func NewClientFromConfig(cfg *model.Config, logger *zap.Logger) *Client {
	opts := ClientOptions{Logger: logger}

	if cfg.Providers.FactCheckAPIKey != "" {
		opts.FactCheck = NewGoogleFactCheck(
			cfg.Providers.FactCheckAPIKey,
			cfg.Providers.FactCheckBaseURL,
			cfg.Providers.Timeout,
			cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy,
		)
	}
	if cfg.Providers.NewsAPIKey != "" {
		opts.News = NewNewsAPI(
			cfg.Providers.NewsAPIKey,
			cfg.Providers.NewsBaseURL,
			cfg.Providers.Timeout,
			cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy,
		)
	}

	if cfg.Cache.Enabled {
		opts.Cache = cache.NewLayeredCache(
			cfg.Cache.MemoryTTL,
			expandHome(cfg.Cache.Dir),
			cfg.Cache.DiskTTL,
		)
	}

	if cfg.Providers.RatePerSecond > 0 {
		opts.Limiter = worker.NewLimiter(cfg.Providers.RatePerSecond, cfg.Providers.RateBurst)
	}

	return NewClient(opts)
}

// expandHome resolves a leading ~ in cache paths
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
