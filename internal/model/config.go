package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config is the complete notmytype configuration
type Config struct {
	Catalog      CatalogConfig      `yaml:"catalog" mapstructure:"catalog"`
	Cache        CacheConfig        `yaml:"cache" mapstructure:"cache"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	Store        StoreConfig        `yaml:"store" mapstructure:"store"`
	Server       ServerConfig       `yaml:"server" mapstructure:"server"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency" mapstructure:"concurrency"`
	LLM          LLMConfig          `yaml:"llm" mapstructure:"llm"`
	Log          LogConfig          `yaml:"log" mapstructure:"log"`
	Output       OutputConfig       `yaml:"output" mapstructure:"output"`
}

// CatalogConfig configures the remote font catalog client
type CatalogConfig struct {
	APIURL       string        `yaml:"api_url" mapstructure:"api_url"`
	APIKey       string        `yaml:"api_key,omitempty" mapstructure:"api_key"`
	Sort         string        `yaml:"sort" mapstructure:"sort"`
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	PopularLimit int           `yaml:"popular_limit" mapstructure:"popular_limit"`
	HTTPProxy    string        `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
}

// CacheConfig configures the catalog response cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// RateLimitingConfig configures per-host request pacing
type RateLimitingConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" mapstructure:"burst_size"`
}

// StoreConfig configures the local saved-pairing store
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Addr           string        `yaml:"addr" mapstructure:"addr"`
	BaseURL        string        `yaml:"base_url" mapstructure:"base_url"` // Used for share links
	ReadTimeout    time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	MaxRequestSize int           `yaml:"max_request_size" mapstructure:"max_request_size"`
}

// ConcurrencyConfig configures batch validation
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// LLMConfig configures the optional critique provider
type LLMConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"` // "" disables
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"api_key,omitempty" mapstructure:"api_key"`
	BaseURL   string `yaml:"base_url,omitempty" mapstructure:"base_url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// LogConfig configures structured logging
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
	JSON  bool   `yaml:"json" mapstructure:"json"`
	File  string `yaml:"file,omitempty" mapstructure:"file"`
}

// OutputConfig configures terminal output
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
	Color   bool `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	dataDir := defaultDataDir()

	return &Config{
		Catalog: CatalogConfig{
			APIURL:       "https://www.googleapis.com/webfonts/v1/webfonts",
			Sort:         "popularity",
			Timeout:      10 * time.Second,
			UserAgent:    "notmytype/0.1 (+https://github.com/ppiankov/notmytype)",
			MaxBodyBytes: 8_000_000,
			PopularLimit: 50,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       filepath.Join(dataDir, "cache"),
			MemoryTTL: time.Hour,
			DiskTTL:   24 * time.Hour,
		},
		RateLimiting: RateLimitingConfig{
			RequestsPerSecond: 2,
			BurstSize:         4,
		},
		Store: StoreConfig{
			Path: filepath.Join(dataDir, "saved_pairings.json"),
		},
		Server: ServerConfig{
			Addr:           ":8080",
			BaseURL:        "http://localhost:8080",
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   30 * time.Second,
			MaxRequestSize: 1 << 20,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		LLM: LLMConfig{
			Timeout:   30,
			MaxTokens: 400,
		},
		Log: LogConfig{
			Level: "info",
		},
		Output: OutputConfig{
			Color: true,
		},
	}
}

// defaultDataDir returns ~/.notmytype, or a relative dir when HOME is unknown
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".notmytype"
	}
	return filepath.Join(home, ".notmytype")
}
