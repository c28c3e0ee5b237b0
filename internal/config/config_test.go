package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Wikipedia.Enabled = true
	cfg.Wikipedia.APIURL = "https://en.wikipedia.org/w/api.php"
	cfg.Wikipedia.RestURL = "https://en.wikipedia.org/api/rest_v1/page/summary"
	cfg.Wikipedia.TimeoutSecs = 2
	cfg.Wikipedia.MaxSentences = 3
	cfg.Wikipedia.CachePath = "lexis_cache.db"
	cfg.Worker.Concurrency = 4
	cfg.Worker.Queues = map[string]int{"default": 1}
	return cfg
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_WikipediaDisabledSkipsWikipediaChecks(t *testing.T) {
	cfg := validConfig()
	cfg.Wikipedia.Enabled = false
	cfg.Wikipedia.APIURL = ""
	cfg.Wikipedia.CachePath = ""
	assert.NoError(t, cfg.Validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		msg    string
	}{
		{"missing api url", func(c *Config) { c.Wikipedia.APIURL = "" }, "wikipedia.api_url"},
		{"missing rest url", func(c *Config) { c.Wikipedia.RestURL = "" }, "wikipedia.rest_url"},
		{"zero timeout", func(c *Config) { c.Wikipedia.TimeoutSecs = 0 }, "wikipedia.timeout_seconds"},
		{"zero max sentences", func(c *Config) { c.Wikipedia.MaxSentences = 0 }, "wikipedia.max_sentences"},
		{"missing cache path", func(c *Config) { c.Wikipedia.CachePath = "" }, "wikipedia.cache_path"},
		{"zero concurrency", func(c *Config) { c.Worker.Concurrency = 0 }, "worker.concurrency"},
		{"no queues", func(c *Config) { c.Worker.Queues = nil }, "worker.queues"},
		{"non-positive queue priority", func(c *Config) { c.Worker.Queues = map[string]int{"default": 0} }, "priority"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Addr)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.Wikipedia.Enabled)
	assert.Equal(t, 2, cfg.Wikipedia.TimeoutSecs)
	assert.Equal(t, 3, cfg.Wikipedia.MaxSentences)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.NoError(t, cfg.Validate())
}
