// Package config loads CLI settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// DefaultMaxBytes caps documents read by convert.
const DefaultMaxBytes = 8 << 20

// Config holds settings shared by every command. Flags override it.
type Config struct {
	Lang      string `env:"ROMAN_LANG"      envDefault:"en"`
	LogLevel  string `env:"ROMAN_LOG_LEVEL" envDefault:"warn"`
	Lowercase bool   `env:"ROMAN_LOWERCASE"`
	MaxBytes  int64  `env:"ROMAN_MAX_BYTES" envDefault:"8388608"`
}

// Load reads Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("invalid ROMAN_LOG_LEVEL %q", cfg.LogLevel)
	}
	if cfg.MaxBytes <= 0 {
		return Config{}, fmt.Errorf("ROMAN_MAX_BYTES must be positive, got %d", cfg.MaxBytes)
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
