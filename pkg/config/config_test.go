package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, 25*time.Second, cfg.AnalysisDeadline)
	assert.Equal(t, 15*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 5*time.Second, cfg.RobotsTimeout)
	assert.Equal(t, 8*time.Second, cfg.SitemapTimeout)
	assert.Equal(t, 2*time.Second, cfg.LinkCheckTimeout)
	assert.Equal(t, 3*time.Second, cfg.SecurityTimeout)
	assert.Equal(t, 5, cfg.BrokenLinkLimit)
	assert.Equal(t, 5, cfg.BrokenLinkBatch)
	assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.False(t, cfg.CacheEnabled())
}

func TestLoadFile_Environment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("FETCH_TIMEOUT", "7s")
	t.Setenv("BROKEN_LINK_LIMIT", "3")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 7*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 3, cfg.BrokenLinkLimit)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.True(t, cfg.CacheEnabled())
}

func TestLoadFile_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "GEMINI_API_KEY=test-key\nCACHE_TTL=1m\nLOG_LEVEL=debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty port", func(c *Config) { c.Port = "" }, true},
		{"zero deadline", func(c *Config) { c.AnalysisDeadline = 0 }, true},
		{"zero batch", func(c *Config) { c.BrokenLinkBatch = 0 }, true},
		{"negative limit", func(c *Config) { c.BrokenLinkLimit = -1 }, true},
		{"zero limit disables checks", func(c *Config) { c.BrokenLinkLimit = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Port:             "8081",
				AnalysisDeadline: time.Second,
				FetchTimeout:     time.Second,
				BrokenLinkLimit:  5,
				BrokenLinkBatch:  5,
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
