package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration for the analyzer service
type Config struct {
	Port       string `mapstructure:"PORT"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`
	LogDir     string `mapstructure:"LOG_DIR"`
	AppVersion string `mapstructure:"APP_VERSION"`

	AnalysisDeadline time.Duration `mapstructure:"ANALYSIS_DEADLINE"`
	FetchTimeout     time.Duration `mapstructure:"FETCH_TIMEOUT"`
	RobotsTimeout    time.Duration `mapstructure:"ROBOTS_TIMEOUT"`
	SitemapTimeout   time.Duration `mapstructure:"SITEMAP_TIMEOUT"`
	LinkCheckTimeout time.Duration `mapstructure:"LINK_CHECK_TIMEOUT"`
	SecurityTimeout  time.Duration `mapstructure:"SECURITY_TIMEOUT"`
	TLSTimeout       time.Duration `mapstructure:"TLS_TIMEOUT"`
	DNSTimeout       time.Duration `mapstructure:"DNS_TIMEOUT"`

	BrokenLinkLimit int `mapstructure:"BROKEN_LINK_LIMIT"`
	BrokenLinkBatch int `mapstructure:"BROKEN_LINK_BATCH"`

	GeminiAPIKey  string        `mapstructure:"GEMINI_API_KEY"`
	GeminiModel   string        `mapstructure:"GEMINI_MODEL"`
	GeminiTimeout time.Duration `mapstructure:"GEMINI_TIMEOUT"`

	PageSpeedAPIKey  string        `mapstructure:"PAGESPEED_API_KEY"`
	PageSpeedTimeout time.Duration `mapstructure:"PAGESPEED_TIMEOUT"`

	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`
	CacheTTL      time.Duration `mapstructure:"CACHE_TTL"`

	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"`
}

var defaults = map[string]any{
	"PORT":        "8081",
	"LOG_LEVEL":   "info",
	"LOG_DIR":     "",
	"APP_VERSION": "dev",

	"ANALYSIS_DEADLINE":  25 * time.Second,
	"FETCH_TIMEOUT":      15 * time.Second,
	"ROBOTS_TIMEOUT":     5 * time.Second,
	"SITEMAP_TIMEOUT":    8 * time.Second,
	"LINK_CHECK_TIMEOUT": 2 * time.Second,
	"SECURITY_TIMEOUT":   3 * time.Second,
	"TLS_TIMEOUT":        5 * time.Second,
	"DNS_TIMEOUT":        5 * time.Second,

	"BROKEN_LINK_LIMIT": 5,
	"BROKEN_LINK_BATCH": 5,

	"GEMINI_API_KEY": "",
	"GEMINI_MODEL":   "gemini-1.5-flash",
	"GEMINI_TIMEOUT": 10 * time.Second,

	"PAGESPEED_API_KEY": "",
	"PAGESPEED_TIMEOUT": 20 * time.Second,

	"REDIS_ADDR":     "",
	"REDIS_PASSWORD": "",
	"REDIS_DB":       0,
	"CACHE_TTL":      10 * time.Minute,

	"RATE_LIMIT_RPS":   5.0,
	"RATE_LIMIT_BURST": 10,
}

// Load reads configuration from .env (if present) and the environment
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile reads configuration from the given env file and the environment.
// A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	// Every key needs a default, otherwise Unmarshal ignores the environment.
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	_ = v.ReadInConfig()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the pipeline cannot run with
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("invalid config: PORT is empty")
	}
	if c.AnalysisDeadline <= 0 || c.FetchTimeout <= 0 {
		return fmt.Errorf("invalid config: ANALYSIS_DEADLINE and FETCH_TIMEOUT must be positive")
	}
	if c.BrokenLinkLimit < 0 || c.BrokenLinkBatch <= 0 {
		return fmt.Errorf("invalid config: BROKEN_LINK_LIMIT must be >= 0 and BROKEN_LINK_BATCH > 0")
	}
	return nil
}

// CacheEnabled reports whether a Redis response cache is configured
func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}
