package model

import "time"

// Config is the full engine configuration, assembled once at startup and
// passed explicitly into components (no ambient globals).
type Config struct {
	HTTP        HTTPConfig        `yaml:"http" mapstructure:"http"`
	Providers   ProvidersConfig   `yaml:"providers" mapstructure:"providers"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// HTTPConfig controls outbound HTTP behavior (fetching and providers)
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	HTTPProxy    string        `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy,omitempty" mapstructure:"no_proxy"`
	InsecureTLS  bool          `yaml:"insecure_tls" mapstructure:"insecure_tls"`
}

// ProvidersConfig holds external corpus provider settings.
// Empty API keys put the engine in reference-table-only mode.
type ProvidersConfig struct {
	FactCheckAPIKey  string        `yaml:"factcheck_api_key,omitempty" mapstructure:"factcheck_api_key"`
	FactCheckBaseURL string        `yaml:"factcheck_base_url,omitempty" mapstructure:"factcheck_base_url"`
	NewsAPIKey       string        `yaml:"news_api_key,omitempty" mapstructure:"news_api_key"`
	NewsBaseURL      string        `yaml:"news_base_url,omitempty" mapstructure:"news_base_url"`
	Timeout          time.Duration `yaml:"timeout" mapstructure:"timeout"`
	RatePerSecond    float64       `yaml:"rate_per_second" mapstructure:"rate_per_second"`
	RateBurst        int           `yaml:"rate_burst" mapstructure:"rate_burst"`
}

// CacheConfig controls the layered provider-response cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ConcurrencyConfig limits concurrent work
type ConcurrencyConfig struct {
	Workers          int `yaml:"workers" mapstructure:"workers"`                     // Batch processing workers
	FactCheckWorkers int `yaml:"factcheck_workers" mapstructure:"factcheck_workers"` // Per-claim query fan-out
}

// LLMConfig configures the optional explanation generator
type LLMConfig struct {
	Provider  string `yaml:"provider,omitempty" mapstructure:"provider"` // "openai" or "" (disabled)
	Model     string `yaml:"model,omitempty" mapstructure:"model"`
	APIKey    string `yaml:"-" mapstructure:"-"` // Environment only, never serialized
	BaseURL   string `yaml:"base_url,omitempty" mapstructure:"base_url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "Veracity/0.1 (+https://github.com/veracitylab/veracity)",
			MaxBodyBytes: 2_000_000,
		},
		Providers: ProvidersConfig{
			Timeout:       10 * time.Second,
			RatePerSecond: 2,
			RateBurst:     5,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "~/.veracity/cache",
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers:          4,
			FactCheckWorkers: 8,
		},
		LLM: LLMConfig{
			Timeout:   30,
			MaxTokens: 800,
		},
	}
}
