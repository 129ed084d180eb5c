package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, loaded from environment variables.
type Config struct {
	Environment string `env:"HEARTH_ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"HEARTH_LOG_LEVEL" envDefault:"info"`

	// RoomFile optionally overrides the built-in room catalog.
	RoomFile string `env:"HEARTH_ROOM_FILE"`

	// Seed fixes the quest engine's random source. 0 means time-based.
	Seed uint64 `env:"HEARTH_SEED" envDefault:"0"`

	// TickMS is the periodic tick interval in milliseconds.
	TickMS int `env:"HEARTH_TICK_MS" envDefault:"100"`

	// Mute disables the audio cue sink.
	Mute bool `env:"HEARTH_MUTE" envDefault:"false"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TickMS < 10 {
		cfg.TickMS = 10
	}
	return cfg, nil
}

// TickInterval returns the tick interval as a duration.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// SlogLevel maps the configured level string to a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
