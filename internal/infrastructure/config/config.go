package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server       ServerConfig
	LLM          LLMConfig
	Orchestrator OrchestratorConfig
	Logging      LogConfig
	RateLimit    RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// LLMConfig holds completion provider configuration.
type LLMConfig struct {
	BaseURL           string        `envconfig:"LLM_BASE_URL" default:"http://localhost:11434"`
	APIKey            string        `envconfig:"LLM_API_KEY" default:""`
	Model             string        `envconfig:"LLM_MODEL" default:"gpt-4o-mini"`
	MaxTokens         int           `envconfig:"LLM_MAX_TOKENS" default:"4096"`
	Timeout           time.Duration `envconfig:"LLM_TIMEOUT" default:"120s"`
	RequestsPerMinute int           `envconfig:"LLM_RPM" default:"0"`
}

// OrchestratorConfig holds agent scheduling configuration.
type OrchestratorConfig struct {
	Workers      int           `envconfig:"ORCHESTRATOR_WORKERS" default:"4"`
	AgentTimeout time.Duration `envconfig:"ORCHESTRATOR_AGENT_TIMEOUT" default:"2m"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"50"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"100"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8080",
			Host:            "0.0.0.0",
			ShutdownTimeout: 10 * time.Second,
		},
		LLM: LLMConfig{
			BaseURL:   "http://localhost:11434",
			Model:     "gpt-4o-mini",
			MaxTokens: 4096,
			Timeout:   120 * time.Second,
		},
		Orchestrator: OrchestratorConfig{
			Workers:      4,
			AgentTimeout: 2 * time.Minute,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 50,
			Burst:             100,
			Enabled:           true,
		},
	}
}
