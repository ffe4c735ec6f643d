// Package config provides configuration loading and validation for outstat.
package config

import (
	"github.com/ccollicutt/outstat/pkg/extract"
)

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Format is the report format, xlsx or txt.
	Format string `yaml:"format,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty"`

	// Layouts overrides where summary columns are read from. Nexus versions
	// other than 4.12/4.13 may shift them.
	Layouts LayoutsConfig `yaml:"layouts,omitempty"`
}

// LayoutsConfig holds per-section layout overrides.
type LayoutsConfig struct {
	Rate       LayoutConfig `yaml:"rate,omitempty"`
	Cumulative LayoutConfig `yaml:"cumulative,omitempty"`
}

// LayoutConfig overrides a built-in section layout. Empty fields keep the
// built-in value.
type LayoutConfig struct {
	// ReportPattern is a regex matching the section banner.
	ReportPattern string `yaml:"report_pattern,omitempty"`

	// HeaderPattern is a regex matching the column-title line.
	HeaderPattern string `yaml:"header_pattern,omitempty"`

	// Columns are the semantic columns read from the section.
	Columns []string `yaml:"columns,omitempty"`

	// Indices are the field positions of Columns, one per column.
	Indices []int `yaml:"indices,omitempty"`

	// Split lists field positions that keep only their first word.
	// An explicit empty list disables splitting.
	Split []int `yaml:"split,omitempty"`

	// compiled is the resulting layout (populated during validation).
	compiled *extract.Layout
}

// Layout returns the validated layout.
func (l *LayoutConfig) Layout() *extract.Layout {
	return l.compiled
}
