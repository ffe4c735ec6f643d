package extract

import (
	"math"
	"strconv"
	"strings"
)

// Finalize sorts the table and coerces its values into typed rows.
// Numeric columns that are empty, not a decimal number, or not finite
// become nil.
// Returns ErrNoRecords if the table is empty.
func Finalize(t *Table) (*Result, error) {
	if t.Len() == 0 {
		return nil, ErrNoRecords
	}

	result := &Result{
		Rows:       make([]*Row, 0, t.Len()),
		Reservoirs: append([]string(nil), t.Reservoirs...),
	}

	for _, key := range t.Keys() {
		rec := t.records[key]
		row := &Row{
			Reservoir: key.Reservoir,
			Well:      key.Well,
			Time:      key.Time,
			Date:      rec.Date,
			Text:      make(map[string]string),
			Numbers:   make(map[string]*float64),
		}

		for _, col := range Header[4:] {
			raw := rec.Values[col.Name]
			switch col.Kind {
			case KindNumber:
				row.Numbers[col.Name] = parseNumber(raw)
			default:
				row.Text[col.Name] = raw
			}
		}

		result.Rows = append(result.Rows, row)
	}

	return result, nil
}

func parseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	// ParseFloat also accepts hex mantissas
	if s == "" || strings.ContainsAny(s, "xX") {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
