package model

import (
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// Config is the complete runtime configuration. Defaults come from
// DefaultConfig; the CLI mutates a fresh copy from flags, the config file
// and DUILENS_* environment variables.
type Config struct {
	HTTP         HTTPConfig        `yaml:"http" json:"http"`
	Cache        CacheConfig       `yaml:"cache" json:"cache"`
	Corpus       CorpusConfig      `yaml:"corpus" json:"corpus"`
	Segmenter    SegmenterConfig   `yaml:"segmenter" json:"segmenter"`
	Output       OutputConfig      `yaml:"output" json:"output"`
	Concurrency  ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	RateLimiting RateLimitConfig   `yaml:"rate_limiting" json:"rate_limiting"`
	LLM          LLMConfig         `yaml:"llm" json:"llm"`
}

// HTTPConfig controls page fetching for scan mode.
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" json:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls" json:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy" json:"http_proxy,omitempty"`
	HTTPSProxy   string        `yaml:"https_proxy" json:"https_proxy,omitempty"`
	NoProxy      string        `yaml:"no_proxy" json:"no_proxy,omitempty"`
}

// CacheConfig controls the layered page/report cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// CorpusConfig locates the predicate corpus table. An empty Path means
// "search the default locations"; a missing file is non-fatal (lookup
// degrades to all-miss).
type CorpusConfig struct {
	Path string `yaml:"path" json:"path"`
}

// SegmenterConfig selects the tokenization strategy.
// Strategy is "lexicon" (deterministic greedy longest-match, the default)
// or "sego" (dictionary segmenter seeded with the lexicon vocabulary).
type SegmenterConfig struct {
	Strategy string `yaml:"strategy" json:"strategy"`

	// DictPath optionally appends a user dictionary ("word freq pos" lines)
	// to the sego strategy. Ignored by the lexicon strategy.
	DictPath string `yaml:"dict_path" json:"dict_path,omitempty"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// ConcurrencyConfig controls batch processing.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers"`
}

// RateLimitConfig controls per-domain politeness in scan mode.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" json:"burst_size"`
	RespectRobots     bool    `yaml:"respect_robots" json:"respect_robots"`
}

// LLMConfig configures the optional tutor note generator.
// CRITICAL: the tutor runs after classification and never affects it.
type LLMConfig struct {
	// Provider name: "openai", "anthropic", "ollama", "" (disabled).
	Provider string `yaml:"provider" json:"provider"`
	Model    string `yaml:"model" json:"model"`
	APIKey   string `yaml:"-" json:"-"`
	BaseURL  string `yaml:"base_url" json:"base_url,omitempty"`

	// Timeout in seconds for provider API calls.
	Timeout int `yaml:"timeout" json:"timeout"`

	// StrictGrounding rejects notes that quote percentages the classifier
	// never produced. Should always be true.
	StrictGrounding bool `yaml:"strict_grounding" json:"strict_grounding"`

	MaxTokens int `yaml:"max_tokens" json:"max_tokens"`

	HTTPProxy  string `yaml:"http_proxy" json:"http_proxy,omitempty"`
	HTTPSProxy string `yaml:"https_proxy" json:"https_proxy,omitempty"`
	NoProxy    string `yaml:"no_proxy" json:"no_proxy,omitempty"`
}

// DefaultConfig returns the canonical defaults.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "DuiLens/0.1 (+https://github.com/ppiankov/duilens)",
			MaxBodyBytes: 2_000_000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       defaultCacheDir(),
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Corpus: CorpusConfig{
			Path: "",
		},
		Segmenter: SegmenterConfig{
			Strategy: "lexicon",
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		RateLimiting: RateLimitConfig{
			RequestsPerSecond: 2.0,
			BurstSize:         5,
			RespectRobots:     true,
		},
		LLM: LLMConfig{
			Provider:        "",
			Timeout:         30,
			StrictGrounding: true,
			MaxTokens:       600,
		},
	}
}

// DefaultCorpusPaths lists the locations searched when Corpus.Path is empty.
func DefaultCorpusPaths() []string {
	paths := []string{filepath.Join("data", "predicate_corpus.json")}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".duilens", "predicate_corpus.json"))
	}
	return paths
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".duilens-cache"
	}
	return filepath.Join(home, ".duilens", "cache")
}
