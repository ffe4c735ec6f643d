// Package output renders finalized well status tables.
package output

import (
	"context"
	"fmt"
	"io"

	"github.com/ccollicutt/outstat/pkg/extract"
)

// Formatter renders a well status table in a specific format.
type Formatter interface {
	// Format renders the result to the given writer.
	Format(ctx context.Context, result *extract.Result, w io.Writer) error

	// Name returns the format name (txt, xlsx).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Precision is the number of decimals for numeric columns.
	Precision int
}

// Display conventions shared by all formats.
const (
	DefaultPrecision = 2
	DateLayout       = "02-Jan-2006"
	SheetName        = "Well_Status"
)

// DefaultFormatOptions returns the options used by the CLI.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{Precision: DefaultPrecision}
}

// New returns the formatter for a format name.
func New(name string, opts FormatOptions) (Formatter, error) {
	switch name {
	case "txt":
		return NewTextFormatter(opts), nil
	case "xlsx":
		return NewXLSXFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use xlsx or txt)", name)
	}
}
