// Package config loads sprite-decoder configuration from environment
// variables, with command-line overrides taking precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the application configuration.
type Config struct {
	Decode  DecodeConfig  `json:"decode"`
	Logging LoggingConfig `json:"logging"`
}

// LoadOptions holds command-line override options.
type LoadOptions struct {
	LogLevel string
}

// DecodeConfig holds decoder-layer defaults. These never reach
// internal/sprite.Decode directly — the CLI consults them to build an
// explicit sprite.Options, preserving the core's "no shared state across
// decode calls" invariant.
type DecodeConfig struct {
	// MaxDeclaredTiles caps a user-supplied -size override before it
	// reaches the core. The core itself never rejects a declared size;
	// this is purely a CLI-layer sanity ceiling against fat-fingered input.
	MaxDeclaredTiles int `json:"maxDeclaredTiles" env:"POKESPRITE_MAX_DECLARED_TILES" default:"225"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `json:"level" env:"POKESPRITE_LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"POKESPRITE_LOG_FORMAT" default:"text"`
}

// Load loads configuration from environment variables with defaults.
func Load() (*Config, error) {
	return LoadWithOverrides(LoadOptions{})
}

// LoadWithOverrides loads configuration with command-line overrides.
func LoadWithOverrides(opts LoadOptions) (*Config, error) {
	cfg := &Config{}

	cfg.Decode.MaxDeclaredTiles = getIntWithDefault("POKESPRITE_MAX_DECLARED_TILES", 225)

	cfg.Logging.Level = getOverrideOrEnv(opts.LogLevel, "POKESPRITE_LOG_LEVEL", "info")
	cfg.Logging.Format = getEnvWithDefault("POKESPRITE_LOG_FORMAT", "text")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Decode.MaxDeclaredTiles <= 0 {
		return fmt.Errorf("max declared tiles must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	return nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getOverrideOrEnv(override, envKey, defaultValue string) string {
	if override != "" {
		return override
	}
	return getEnvWithDefault(envKey, defaultValue)
}
