package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "http://localhost:11434", cfg.LLM.BaseURL)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, 4096, cfg.LLM.MaxTokens)
	assert.Equal(t, 120*time.Second, cfg.LLM.Timeout)

	assert.Equal(t, 4, cfg.Orchestrator.Workers)
	assert.Equal(t, 2*time.Minute, cfg.Orchestrator.AgentTimeout)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	assert.Equal(t, 50, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 100, cfg.RateLimit.Burst)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoadMatchesDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	envVars := map[string]string{
		"PORT":                       "9090",
		"HOST":                       "127.0.0.1",
		"LLM_BASE_URL":               "https://api.example.com",
		"LLM_API_KEY":                "secret",
		"LLM_MODEL":                  "custom-model",
		"LLM_MAX_TOKENS":             "2048",
		"LLM_RPM":                    "30",
		"ORCHESTRATOR_WORKERS":       "8",
		"ORCHESTRATOR_AGENT_TIMEOUT": "90s",
		"LOG_LEVEL":                  "debug",
		"LOG_DEV":                    "true",
		"RATE_LIMIT_ENABLED":         "false",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)

	assert.Equal(t, "https://api.example.com", cfg.LLM.BaseURL)
	assert.Equal(t, "secret", cfg.LLM.APIKey)
	assert.Equal(t, "custom-model", cfg.LLM.Model)
	assert.Equal(t, 2048, cfg.LLM.MaxTokens)
	assert.Equal(t, 30, cfg.LLM.RequestsPerMinute)

	assert.Equal(t, 8, cfg.Orchestrator.Workers)
	assert.Equal(t, 90*time.Second, cfg.Orchestrator.AgentTimeout)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoadOrDefaultRecovers(t *testing.T) {
	t.Setenv("ORCHESTRATOR_WORKERS", "not-a-number")

	cfg := LoadOrDefault()
	require.NotNil(t, cfg)
	assert.Equal(t, 4, cfg.Orchestrator.Workers)
}
