package output

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ccollicutt/outstat/pkg/extract"
)

// TextFormatter writes the table as comma-separated text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "txt"
}

// Format renders the result as CSV: one header row, then one row per record.
// Null numbers and dates are written as empty fields.
func (f *TextFormatter) Format(ctx context.Context, result *extract.Result, w io.Writer) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(extract.Header))
	for i, col := range extract.Header {
		header[i] = col.Name
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	record := make([]string, len(extract.Header))
	for _, row := range result.Rows {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		for i, col := range extract.Header {
			record[i] = f.cell(row, col)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row %s: %w", row.Well, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func (f *TextFormatter) cell(row *extract.Row, col extract.Column) string {
	switch col.Name {
	case extract.ColReservoir:
		return row.Reservoir
	case extract.ColWell:
		return row.Well
	case extract.ColTime:
		return f.number(row.Time)
	case extract.ColDate:
		if row.Date.IsZero() {
			return ""
		}
		return row.Date.Format(DateLayout)
	}

	if col.Kind == extract.KindNumber {
		v, ok := row.Number(col.Name)
		if !ok {
			return ""
		}
		return f.number(v)
	}
	return row.Text[col.Name]
}

func (f *TextFormatter) number(v float64) string {
	return strconv.FormatFloat(v, 'f', f.opts.Precision, 64)
}
