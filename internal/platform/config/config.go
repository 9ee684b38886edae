// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (completion client, stores) via constructors.
  - Zero Hidden State: No global variables are used to store config.

Nothing is required. A process started with an empty environment serves the
dashboard with canned enrichment answers.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the IndiePub API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Completion service (Gemini). An empty key is a supported state.
	APIKey            string        `env:"API_KEY"`
	GeminiAPIKey      string        `env:"GEMINI_API_KEY"`
	CompletionModel   string        `env:"COMPLETION_MODEL"    envDefault:"gemini-2.5-flash"`
	CompletionBaseURL string        `env:"COMPLETION_BASE_URL"`
	CompletionTimeout time.Duration `env:"COMPLETION_TIMEOUT"  envDefault:"30s"`

	// StoreLatency is the simulated latency of every record repository call.
	StoreLatency time.Duration `env:"STORE_LATENCY" envDefault:"50ms"`

	// Cross-Origin Resource Sharing
	ExtraOrigins []string `env:"EXTRA_ORIGINS" envSeparator:","`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.CompletionTimeout <= 0 {
		return nil, fmt.Errorf("config: COMPLETION_TIMEOUT must be positive, got %s", cfg.CompletionTimeout)
	}
	if cfg.StoreLatency < 0 {
		return nil, fmt.Errorf("config: STORE_LATENCY must not be negative, got %s", cfg.StoreLatency)
	}

	return cfg, nil
}

// CompletionKey returns the credential for the completion service.
// API_KEY wins over GEMINI_API_KEY. The result may be empty.
func (c *Config) CompletionKey() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return c.GeminiAPIKey
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// AllowedOrigins returns the extra CORS origins accepted outside development.
func (c *Config) AllowedOrigins() []string {
	return c.ExtraOrigins
}
