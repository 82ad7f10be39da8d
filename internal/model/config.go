package model

import "time"

// Config is the complete leadflow configuration tree.
// It is YAML-serializable so `leadflow config show` and `config init`
// can round-trip it.
type Config struct {
	API         APIConfig         `yaml:"api"`
	HTTP        HTTPConfig        `yaml:"http"`
	Flow        FlowConfig        `yaml:"flow"`
	Cache       CacheConfig       `yaml:"cache"`
	Preflight   PreflightConfig   `yaml:"preflight"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	LLM         LLMConfig         `yaml:"llm"`
	Output      OutputConfig      `yaml:"output"`
	Server      ServerConfig      `yaml:"server"`
}

// APIConfig configures the remote report-generation endpoint.
type APIConfig struct {
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
}

// HTTPConfig configures outbound HTTP behavior shared by the client
// and the website preflight.
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy"`
}

// FlowConfig tunes the submission state machine.
type FlowConfig struct {
	SuccessRevert time.Duration `yaml:"success_revert"` // Success -> Idle delay
	NotifyTimeout time.Duration `yaml:"notify_timeout"` // toast auto-dismiss
}

// CacheConfig configures the report cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Dir     string        `yaml:"dir"`
	TTL     time.Duration `yaml:"ttl"`
}

// PreflightConfig configures the optional website preflight.
type PreflightConfig struct {
	Enabled bool          `yaml:"enabled"`
	Timeout time.Duration `yaml:"timeout"`
}

// RateLimitConfig configures per-key request throttling.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// ConcurrencyConfig configures batch processing.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// LLMConfig configures the optional local report generator.
// An empty provider means reports come from the remote endpoint.
type LLMConfig struct {
	Provider  string `yaml:"provider"`
	Model     string `yaml:"model"`
	APIKey    string `yaml:"api_key"`
	BaseURL   string `yaml:"base_url"`
	Timeout   int    `yaml:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens"`
}

// OutputConfig configures report artifacts.
type OutputConfig struct {
	Verbose       bool   `yaml:"verbose"`
	IncludeFooter bool   `yaml:"include_footer"`
	PDFName       string `yaml:"pdf_name"`
}

// ServerConfig configures the landing-page server.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Endpoint: "https://api.leadflow.dev/v1/report",
			Timeout:  60 * time.Second,
		},
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "Leadflow/0.1 (+https://github.com/pkorolev/leadflow)",
			MaxBodyBytes: 2_000_000,
		},
		Flow: FlowConfig{
			SuccessRevert: 3 * time.Second,
			NotifyTimeout: 5 * time.Second,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     defaultCacheDir(),
			TTL:     24 * time.Hour,
		},
		Preflight: PreflightConfig{
			Enabled: true,
			Timeout: 10 * time.Second,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 1,
			Burst:             5,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		LLM: LLMConfig{
			Provider:  "",
			Timeout:   30,
			MaxTokens: 2000,
		},
		Output: OutputConfig{
			IncludeFooter: true,
			PDFName:       "seo-report.pdf",
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
	}
}
