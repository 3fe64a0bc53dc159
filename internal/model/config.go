package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// Config is the complete ClariScan configuration
type Config struct {
	HTTP         HTTPConfig         `yaml:"http" mapstructure:"http"`
	Cache        CacheConfig        `yaml:"cache" mapstructure:"cache"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency" mapstructure:"concurrency"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	Output       OutputConfig       `yaml:"output" mapstructure:"output"`
	Analysis     AnalysisConfig     `yaml:"analysis" mapstructure:"analysis"`
	Server       ServerConfig       `yaml:"server" mapstructure:"server"`
	Store        StoreConfig        `yaml:"store" mapstructure:"store"`
	Logging      LoggingConfig      `yaml:"logging" mapstructure:"logging"`
	Watch        WatchConfig        `yaml:"watch" mapstructure:"watch"`
}

// HTTPConfig controls fetching of remote policy pages
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent     string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	InsecureTLS   bool          `yaml:"insecure_tls" mapstructure:"insecure_tls"`
	HTTPProxy     string        `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy    string        `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	NoProxy       string        `yaml:"no_proxy,omitempty" mapstructure:"no_proxy"`
	MaxRetries    int           `yaml:"max_retries" mapstructure:"max_retries"`
	RespectRobots bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
}

// CacheConfig controls report memoization
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ConcurrencyConfig controls worker counts
type ConcurrencyConfig struct {
	Workers       int `yaml:"workers" mapstructure:"workers"`
	ClauseWorkers int `yaml:"clause_workers" mapstructure:"clause_workers"`
}

// RateLimitingConfig throttles requests per domain
type RateLimitingConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" mapstructure:"burst_size"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose        bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter  bool `yaml:"include_footer" mapstructure:"include_footer"`
	IncludeClauses bool `yaml:"include_clauses" mapstructure:"include_clauses"`
}

// AnalysisConfig controls input validation and catalog extensions
type AnalysisConfig struct {
	MinChars       int      `yaml:"min_chars" mapstructure:"min_chars"`
	ClauseMinChars int      `yaml:"clause_min_chars" mapstructure:"clause_min_chars"`
	RuleFiles      []string `yaml:"rule_files,omitempty" mapstructure:"rule_files"`
}

// ServerConfig controls the HTTP API
type ServerConfig struct {
	Addr           string        `yaml:"addr" mapstructure:"addr"`
	CORSOrigins    []string      `yaml:"cors_origins" mapstructure:"cors_origins"`
	MaxUploadBytes int64         `yaml:"max_upload_bytes" mapstructure:"max_upload_bytes"`
	ReadTimeout    time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
}

// StoreConfig selects the persistence backend. Empty DSN disables persistence.
type StoreConfig struct {
	DSN string `yaml:"dsn" mapstructure:"dsn"`
}

// LoggingConfig controls slog output
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// WatchConfig controls drop-folder analysis
type WatchConfig struct {
	Debounce   time.Duration `yaml:"debounce" mapstructure:"debounce"`
	Extensions []string      `yaml:"extensions" mapstructure:"extensions"`
	OutputDir  string        `yaml:"output_dir" mapstructure:"output_dir"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	cacheDir := filepath.Join(os.TempDir(), "clariscan-cache")
	if home, err := os.UserHomeDir(); err == nil {
		cacheDir = filepath.Join(home, ".clariscan", "cache")
	}

	return &Config{
		HTTP: HTTPConfig{
			Timeout:       30 * time.Second,
			UserAgent:     "ClariScan/0.3 (+https://github.com/ppiankov/clariscan)",
			MaxBodyBytes:  5_000_000,
			MaxRetries:    3,
			RespectRobots: true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       cacheDir,
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers:       runtime.NumCPU(),
			ClauseWorkers: 8,
		},
		RateLimiting: RateLimitingConfig{
			RequestsPerSecond: 2,
			BurstSize:         5,
		},
		Output: OutputConfig{
			IncludeFooter:  true,
			IncludeClauses: true,
		},
		Analysis: AnalysisConfig{
			MinChars:       100,
			ClauseMinChars: 100,
		},
		Server: ServerConfig{
			Addr:           ":8000",
			CORSOrigins:    []string{"http://localhost:5173", "https://nightyelf2403.github.io"},
			MaxUploadBytes: 20 << 20,
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   60 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Watch: WatchConfig{
			Debounce:   500 * time.Millisecond,
			Extensions: []string{".pdf", ".txt", ".html", ".htm"},
			OutputDir:  "./clariscan-reports",
		},
	}
}

// Validate reports configuration values that cannot work
func (c *Config) Validate() error {
	var errs []error
	if c.Concurrency.Workers <= 0 {
		errs = append(errs, fmt.Errorf("concurrency.workers must be positive, got %d", c.Concurrency.Workers))
	}
	if c.Concurrency.ClauseWorkers <= 0 {
		errs = append(errs, fmt.Errorf("concurrency.clause_workers must be positive, got %d", c.Concurrency.ClauseWorkers))
	}
	if c.Analysis.MinChars < 0 || c.Analysis.ClauseMinChars < 0 {
		errs = append(errs, errors.New("analysis min chars must not be negative"))
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format))
	}
	if c.RateLimiting.RequestsPerSecond < 0 {
		errs = append(errs, errors.New("rate_limiting.requests_per_second must not be negative"))
	}
	return errors.Join(errs...)
}
