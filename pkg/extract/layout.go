package extract

import (
	"errors"
	"fmt"
	"regexp"
)

// Layout describes where a summary section's columns live.
// Column positions hold for Nexus 4.12 and 4.13; other versions may need
// different Indices (see the layouts section of the config file).
type Layout struct {
	// Name identifies the layout in logs (rate, cumulative).
	Name string

	// Report matches the section banner.
	Report *regexp.Regexp

	// Header matches the column-title line; the separator follows it.
	Header *regexp.Regexp

	// Columns are the semantic columns this section fills.
	Columns []string

	// Indices gives, per column, the position of its field among the
	// boundary-delimited slices of a data row.
	Indices []int

	// Split lists slice positions whose value is followed by a unit or
	// comment; only the first word is kept.
	Split []int

	// EchoDate prints each section timestamp to the progress writer.
	EchoDate bool
}

// Layout names.
const (
	LayoutRate       = "rate"
	LayoutCumulative = "cumulative"
)

// RateLayout returns the "Active Well Rate Summary" layout.
func RateLayout() *Layout {
	return &Layout{
		Name:   LayoutRate,
		Report: regexp.MustCompile(`^\s+Active Well Rate Summary`),
		Header: regexp.MustCompile(`^\s+Name\s+Number\s+CELL\s+IJK`),
		Columns: []string{
			ColQOP, ColQGP, ColQWP, ColQOI, ColQGI, ColQWI,
			ColGOR, ColWCUT, ColQGLG,
			ColBHP, ColTHP, ColSAL,
		},
		Indices: []int{3, 4, 5, 6, 7, 8, 9, 11, 13, 14, 16, 17},
	}
}

// CumulativeLayout returns the "Well Cumulative Summary" layout.
func CumulativeLayout() *Layout {
	return &Layout{
		Name:     LayoutCumulative,
		Report:   regexp.MustCompile(`^\s+Well Cumulative Summary`),
		Header:   regexp.MustCompile(`^\s+Name\s+Status\s+Reason\s+Connection\s+Number\s+CELL\s+IJK`),
		Columns:  []string{ColStatus, ColStatusReason, ColStatusControlCon, ColFirstCompletion, ColWPAV},
		Indices:  []int{1, 2, 3, 5, 15},
		Split:    []int{15},
		EchoDate: true,
	}
}

// Validate checks that the layout is usable.
func (l *Layout) Validate() error {
	if l.Report == nil {
		return errors.New("report pattern is required")
	}
	if l.Header == nil {
		return errors.New("header pattern is required")
	}
	if len(l.Columns) == 0 {
		return errors.New("at least one column is required")
	}
	if len(l.Columns) != len(l.Indices) {
		return fmt.Errorf("%d columns but %d indices", len(l.Columns), len(l.Indices))
	}

	seen := make(map[string]bool, len(l.Columns))
	for i, col := range l.Columns {
		if !IsSemanticColumn(col) {
			return fmt.Errorf("unknown column %q", col)
		}
		if seen[col] {
			return fmt.Errorf("duplicate column %q", col)
		}
		seen[col] = true

		// Slice 0 is always the well name
		if l.Indices[i] < 1 {
			return fmt.Errorf("column %q: index must be >= 1, got %d", col, l.Indices[i])
		}
	}

	for _, s := range l.Split {
		if s < 0 {
			return fmt.Errorf("split index must be >= 0, got %d", s)
		}
	}

	return nil
}

func (l *Layout) splits(i int) bool {
	for _, s := range l.Split {
		if s == i {
			return true
		}
	}
	return false
}

// fields slices a data row and applies the split policy.
func (l *Layout) fields(b Boundaries, line string) []string {
	tokens := b.Slice(line)
	for i, tok := range tokens {
		if l.splits(i) {
			tokens[i] = firstWord(tok)
		}
	}
	return tokens
}

// values picks the layout's columns out of a row's fields. Fields past the
// end of a ragged row come back empty.
func (l *Layout) values(tokens []string) []string {
	values := make([]string, len(l.Indices))
	for i, idx := range l.Indices {
		if idx < len(tokens) {
			values[i] = tokens[idx]
		}
	}
	return values
}
