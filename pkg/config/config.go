package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ccollicutt/outstat/pkg/extract"
)

// ErrInvalidFormat is returned for a report format other than xlsx or txt.
var ErrInvalidFormat = errors.New("report format must be either xlsx (Excel) or txt (ascii)")

// Override sets a configuration value from the command line. Overrides are
// applied after the file and the environment, before validation.
type Override func(*Config)

// WithFormat forces the report format.
func WithFormat(format string) Override {
	return func(c *Config) {
		c.Format = format
	}
}

// WithLogLevel forces the log level.
func WithLogLevel(level string) Override {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// Load reads and validates a configuration file.
func Load(_ context.Context, path string, overrides ...Override) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()
	cfg.apply(overrides)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Resolve returns the default configuration with environment overrides,
// validated. It is used when no config file is given.
func Resolve(overrides ...Override) (*Config, error) {
	cfg := DefaultConfig()
	cfg.applyEnvironmentOverrides()
	cfg.apply(overrides)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func (c *Config) apply(overrides []Override) {
	for _, o := range overrides {
		o(c)
	}
}

// Validate checks a configuration for errors and builds the section layouts.
func Validate(cfg *Config) error {
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	if err := ValidateFormat(cfg.Format); err != nil {
		return fmt.Errorf("format: %w", err)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	if err := buildLayout(&cfg.Layouts.Rate, extract.RateLayout()); err != nil {
		return fmt.Errorf("layouts.rate: %w", err)
	}
	if err := buildLayout(&cfg.Layouts.Cumulative, extract.CumulativeLayout()); err != nil {
		return fmt.Errorf("layouts.cumulative: %w", err)
	}

	return nil
}

// ValidateFormat checks a report format name.
func ValidateFormat(format string) error {
	switch format {
	case FormatXLSX, FormatText:
		return nil
	default:
		return fmt.Errorf("%w : %s", ErrInvalidFormat, format)
	}
}

// ParseLogLevel converts a level name to a slog level.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid level %q (must be debug, info, warn, or error)", level)
	}
}

// buildLayout applies overrides to a built-in layout and validates it.
func buildLayout(lc *LayoutConfig, base *extract.Layout) error {
	if lc.ReportPattern != "" {
		re, err := regexp.Compile(lc.ReportPattern)
		if err != nil {
			return fmt.Errorf("invalid report_pattern: %w", err)
		}
		base.Report = re
	}

	if lc.HeaderPattern != "" {
		re, err := regexp.Compile(lc.HeaderPattern)
		if err != nil {
			return fmt.Errorf("invalid header_pattern: %w", err)
		}
		base.Header = re
	}

	if len(lc.Columns) > 0 {
		if len(lc.Indices) == 0 {
			return errors.New("indices are required when columns are overridden")
		}
		base.Columns = lc.Columns
	}
	if len(lc.Indices) > 0 {
		base.Indices = lc.Indices
	}
	if lc.Split != nil {
		base.Split = lc.Split
	}

	if err := base.Validate(); err != nil {
		return err
	}

	lc.compiled = base
	return nil
}
