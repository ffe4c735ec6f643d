// Package extract parses Nexus well status summaries into an indexed table.
package extract

import (
	"errors"
	"math"
	"time"
)

// ErrNoRecords is returned by Finalize when the report held no well rows.
var ErrNoRecords = errors.New("no well status record found")

// Key and date column names.
const (
	ColReservoir = "RESERVOIR"
	ColWell      = "WELL"
	ColTime      = "TIME"
	ColDate      = "DATE"
)

// Semantic column names filled from the summary sections.
const (
	ColStatus           = "STATUS"
	ColStatusReason     = "STATUS_REASON"
	ColStatusControlCon = "STATUS_CONTROL_CON"
	ColFirstCompletion  = "1ST_COMPLETION"
	ColQOP              = "QOP"
	ColQGP              = "QGP"
	ColQWP              = "QWP"
	ColQOI              = "QOI"
	ColQGI              = "QGI"
	ColQWI              = "QWI"
	ColQGLG             = "QGLG"
	ColWCUT             = "WCUT"
	ColGOR              = "GOR"
	ColWPAV             = "WPAV"
	ColBHP              = "BHP"
	ColTHP              = "THP"
	ColSAL              = "SAL"
)

// Kind tells formatters how to render a column.
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindDate
)

// Column is one output column.
type Column struct {
	Name string
	Kind Kind
}

// Header lists the output columns in export order: the flattened key and
// date first, then the semantic columns.
var Header = []Column{
	{ColReservoir, KindText},
	{ColWell, KindText},
	{ColTime, KindNumber},
	{ColDate, KindDate},
	{ColStatus, KindText},
	{ColStatusReason, KindText},
	{ColStatusControlCon, KindText},
	{ColFirstCompletion, KindText},
	{ColQOP, KindNumber},
	{ColQGP, KindNumber},
	{ColQWP, KindNumber},
	{ColQOI, KindNumber},
	{ColQGI, KindNumber},
	{ColQWI, KindNumber},
	{ColQGLG, KindNumber},
	{ColWCUT, KindNumber},
	{ColGOR, KindNumber},
	{ColWPAV, KindNumber},
	{ColBHP, KindNumber},
	{ColTHP, KindNumber},
	{ColSAL, KindNumber},
}

// semanticKinds maps every column a layout may fill to its kind.
var semanticKinds = func() map[string]Kind {
	m := make(map[string]Kind)
	for _, c := range Header[4:] {
		m[c.Name] = c.Kind
	}
	return m
}()

// IsSemanticColumn reports whether name is a column a layout may fill.
func IsSemanticColumn(name string) bool {
	_, ok := semanticKinds[name]
	return ok
}

// Key identifies a well status record.
type Key struct {
	Reservoir string
	Well      string
	Time      float64
}

// Record holds the raw, untyped values merged for one key.
type Record struct {
	// Date is set once, from the section occurrence that first saw the key.
	Date time.Time

	// Values maps semantic column names to raw report text.
	Values map[string]string
}

// Row is a finalized, typed well status record.
type Row struct {
	Reservoir string
	Well      string
	Time      float64

	// Date is the zero time when no timestamp was ever parsed.
	Date time.Time

	// Text holds the status columns.
	Text map[string]string

	// Numbers holds the numeric columns; nil marks a missing or invalid value.
	Numbers map[string]*float64
}

// Number returns the numeric value of a column and whether it is set.
// Non-finite values count as unset.
func (r *Row) Number(column string) (float64, bool) {
	v := r.Numbers[column]
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, false
	}
	return *v, true
}

// Result is the finalized table handed to formatters. It is never mutated
// after Finalize returns.
type Result struct {
	// Rows is sorted by time, reservoir, then well.
	Rows []*Row

	// Reservoirs lists the reservoirs declared by the report; empty for
	// single-reservoir models.
	Reservoirs []string
}

// MultiReservoir reports whether the source declared a reservoir list.
func (r *Result) MultiReservoir() bool {
	return len(r.Reservoirs) > 0
}
