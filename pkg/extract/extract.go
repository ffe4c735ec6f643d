package extract

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/ccollicutt/outstat/pkg/parser"
)

var reservoirSummaryPattern = regexp.MustCompile(`^\s+Reservoir Summary`)

// Report layout constants.
const (
	// reservoirSubHeaderLines sit between the reservoir summary banner and
	// the first reservoir line.
	reservoirSubHeaderLines = 3

	// reservoirLineFields is the name/id/count shape of a reservoir line.
	reservoirLineFields = 3

	// A data row, counted with its line terminator, is longer than
	// minRowLength and has fewer than maxRowDashes dashes; anything else is
	// decoration.
	minRowLength = 40
	maxRowDashes = 100
)

// Extractor scans a Nexus report for well status summaries.
type Extractor struct {
	rate       *Layout
	cumulative *Layout
	timestamps *parser.TimestampExtractor
	logger     *slog.Logger
	progress   io.Writer
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLayouts replaces the built-in section layouts. Nil leaves the default.
func WithLayouts(rate, cumulative *Layout) Option {
	return func(e *Extractor) {
		if rate != nil {
			e.rate = rate
		}
		if cumulative != nil {
			e.cumulative = cumulative
		}
	}
}

// WithLogger sets the logger for parse warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithProgress sets where section timestamps are echoed.
func WithProgress(w io.Writer) Option {
	return func(e *Extractor) {
		if w != nil {
			e.progress = w
		}
	}
}

// New creates an Extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		rate:       RateLayout(),
		cumulative: CumulativeLayout(),
		timestamps: parser.NewTimestampExtractor(),
		logger:     slog.Default(),
		progress:   io.Discard,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// scanState is the state carried across sections of one report.
type scanState struct {
	src   parser.LineSource
	table *Table

	// current is the last parsed section timestamp. It goes stale when a
	// section's date line cannot be parsed.
	current parser.Timestamp
}

// Parse reads the whole report and returns the merged, unsorted table.
// Malformed rows and date lines are tolerated; only read errors are returned.
func (e *Extractor) Parse(ctx context.Context, src parser.LineSource) (*Table, error) {
	st := &scanState{src: src, table: NewTable()}

	line, err := st.next(ctx)
	for err == nil && line != nil {
		switch {
		case e.cumulative.Report.MatchString(line.Text):
			line, err = e.extractSection(ctx, st, e.cumulative)
		case e.rate.Report.MatchString(line.Text):
			line, err = e.extractSection(ctx, st, e.rate)
		case len(st.table.Reservoirs) == 0 && reservoirSummaryPattern.MatchString(line.Text):
			line, err = e.readReservoirs(ctx, st)
		default:
			line, err = st.next(ctx)
		}
	}
	if err != nil {
		return nil, err
	}

	return st.table, nil
}

// next returns the next line, or nil at end of input.
func (st *scanState) next(ctx context.Context) (*parser.Line, error) {
	line, err := st.src.Next(ctx)
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	return line, nil
}

// readReservoirs collects reservoir names below the reservoir summary banner.
// It returns the first line that is not a reservoir entry.
func (e *Extractor) readReservoirs(ctx context.Context, st *scanState) (*parser.Line, error) {
	if err := st.src.Skip(ctx, reservoirSubHeaderLines); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("reading report: %w", err)
	}

	line, err := st.next(ctx)
	for err == nil && line != nil {
		fields := strings.Fields(line.Text)
		if len(fields) != reservoirLineFields {
			break
		}
		st.table.Reservoirs = append(st.table.Reservoirs, fields[0])
		line, err = st.next(ctx)
	}

	if len(st.table.Reservoirs) > 0 {
		e.logger.Debug("reservoirs found", "reservoirs", st.table.Reservoirs)
	}
	return line, err
}

// extractSection parses one section occurrence starting after its banner.
// It returns the first line after the section.
func (e *Extractor) extractSection(ctx context.Context, st *scanState, layout *Layout) (*parser.Line, error) {
	// The date line comes after one blank or title line
	if err := st.src.Skip(ctx, 1); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("reading report: %w", err)
	}
	line, err := st.next(ctx)
	if err != nil || line == nil {
		return nil, err
	}
	e.readTimestamp(st, layout, line)

	if layout.EchoDate {
		fmt.Fprintf(e.progress, "-->Extracting well status summary at %s\n", st.current.Date.Format("02-Jan-2006"))
	}

	// Find the column titles; the separator line follows
	for line, err = st.next(ctx); err == nil && line != nil; line, err = st.next(ctx) {
		if layout.Header.MatchString(line.Text) {
			return e.extractRows(ctx, st, layout)
		}
	}
	return nil, err
}

func (e *Extractor) readTimestamp(st *scanState, layout *Layout, line *parser.Line) {
	ts, err := e.timestamps.Extract(line.Text)
	if err != nil {
		e.logger.Warn("section date not recognized, reusing previous date",
			"section", layout.Name,
			"line", line.LineNum,
			"previous_date", st.current.Date.Format("2006-01-02"),
			"previous_time", st.current.Time,
			"error", err)
		return
	}
	st.current = ts
}

// extractRows reads the separator and the data rows of a section.
func (e *Extractor) extractRows(ctx context.Context, st *scanState, layout *Layout) (*parser.Line, error) {
	sep, err := st.next(ctx)
	if err != nil || sep == nil {
		return nil, err
	}
	boundaries := InferBoundaries(sep.Text)
	cursor := NewReservoirCursor(st.table.Reservoirs)

	rows := 0
	line, err := st.next(ctx)
	for err == nil && line != nil {
		switch classifyTotal(line.Text, len(st.table.Reservoirs)) {
		case totalEndOfSection:
			e.logger.Debug("section parsed", "section", layout.Name, "time", st.current.Time, "rows", rows)
			return st.next(ctx)
		case totalSubtotal:
			if name, ok := subtotalReservoir(line.Text); ok {
				if !cursor.Advance(name) {
					e.logger.Warn("subtotal for unknown reservoir", "reservoir", name, "line", line.LineNum)
				}
			}
		default:
			if isDataRow(line.Text) && e.extractRow(st, layout, boundaries, cursor, line) {
				rows++
			}
		}
		line, err = st.next(ctx)
	}
	return nil, err
}

// extractRow merges one data row into the table.
func (e *Extractor) extractRow(st *scanState, layout *Layout, b Boundaries, cursor *ReservoirCursor, line *parser.Line) bool {
	tokens := layout.fields(b, line.Text)
	if len(tokens) == 0 || tokens[0] == "" {
		e.logger.Debug("row without well name", "section", layout.Name, "line", line.LineNum)
		return false
	}

	key := Key{
		Reservoir: cursor.Current(),
		Well:      tokens[0],
		Time:      st.current.Time,
	}
	st.table.Upsert(key, st.current.Date, layout.Columns, layout.values(tokens))
	return true
}

// isDataRow takes a line without its terminator.
func isDataRow(line string) bool {
	return len(line)+1 > minRowLength && strings.Count(line, "-") < maxRowDashes
}
