// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Front ends selectable with DUNGEON_UI.
const (
	UIConsole = "console"
	UIScreen  = "screen"
)

// Config holds the application configuration.
type Config struct {
	// Seed for the random source. 0 means a time-based seed.
	Seed int64 `env:"DUNGEON_SEED" envDefault:"0"`
	// UI selects the front end: "console" (line prompt) or "screen" (tcell).
	UI string `env:"DUNGEON_UI" envDefault:"console"`
	// Lang selects the narration language ("en" or "ru").
	Lang string `env:"DUNGEON_LANG" envDefault:"en"`
	// PlayerName names the player in traces.
	PlayerName string `env:"DUNGEON_PLAYER_NAME" envDefault:"Seeker"`

	Telemetry Telemetry
}

// Telemetry holds tracing settings. Tracing is off unless enabled.
type Telemetry struct {
	Enabled         bool   `env:"DUNGEON_OTEL_ENABLED" envDefault:"false"`
	Endpoint        string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"https://api.honeycomb.io"`
	HoneycombAPIKey string `env:"HONEYCOMB_DUNGEON_API_KEY"`
	HoneycombSet    string `env:"HONEYCOMB_DUNGEON_DATASET" envDefault:"dungeonseeker"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values the environment parser cannot.
func (c *Config) Validate() error {
	switch c.UI {
	case UIConsole, UIScreen:
		return nil
	default:
		return fmt.Errorf("DUNGEON_UI must be %q or %q, got %q", UIConsole, UIScreen, c.UI)
	}
}
