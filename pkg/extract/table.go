package extract

import (
	"sort"
	"time"
)

// Table accumulates well status records while a report is scanned.
// Upsert is its only mutation; records are never removed.
type Table struct {
	records map[Key]*Record

	// Reservoirs is the reservoir list discovered in the report.
	Reservoirs []string
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{records: make(map[Key]*Record)}
}

// Upsert writes values for columns under key. The date is only recorded the
// first time the key is seen; the columns are always overwritten. Columns
// not named are left untouched, so sections filling disjoint column sets
// merge into one record whatever their order. Missing values are stored as "".
func (t *Table) Upsert(key Key, date time.Time, columns, values []string) {
	rec, ok := t.records[key]
	if !ok {
		rec = &Record{
			Date:   date,
			Values: make(map[string]string, len(Header)),
		}
		t.records[key] = rec
	}

	for i, col := range columns {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		rec.Values[col] = v
	}
}

// Get returns the record stored under key.
func (t *Table) Get(key Key) (*Record, bool) {
	rec, ok := t.records[key]
	return rec, ok
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// Keys returns all keys sorted by time, reservoir, then well.
func (t *Table) Keys() []Key {
	keys := make([]Key, 0, len(t.records))
	for k := range t.records {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Time != b.Time {
			return a.Time < b.Time
		}
		if a.Reservoir != b.Reservoir {
			return a.Reservoir < b.Reservoir
		}
		return a.Well < b.Well
	})
	return keys
}
