package config

import (
	"os"
)

// Report formats.
const (
	FormatXLSX = "xlsx"
	FormatText = "txt"
)

// Default values for configuration.
const (
	DefaultFormat   = FormatXLSX
	DefaultLogLevel = "info"
)

// Environment variable names.
const (
	EnvFormat   = "OUTSTAT_FORMAT"
	EnvLogLevel = "OUTSTAT_LOG_LEVEL"
)

// DefaultConfig returns a configuration with the built-in layouts.
func DefaultConfig() *Config {
	return &Config{
		Format:   DefaultFormat,
		LogLevel: DefaultLogLevel,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if format := os.Getenv(EnvFormat); format != "" {
		c.Format = format
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
}
