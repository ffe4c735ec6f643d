package extract

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestFinalize_Empty(t *testing.T) {
	_, err := Finalize(NewTable())
	if !errors.Is(err, ErrNoRecords) {
		t.Errorf("Finalize() error = %v, want ErrNoRecords", err)
	}
}

func TestFinalize_CoercesNumbers(t *testing.T) {
	table := NewTable()
	date := time.Date(2020, 1, 31, 0, 0, 0, 0, time.UTC)
	table.Upsert(Key{Well: "P1", Time: 30}, date,
		[]string{ColStatus, ColQOP, ColQGP, ColWPAV, ColBHP},
		[]string{"ON", "1250.5", "", "psia", " 42 "})

	result, err := Finalize(table)
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	row := result.Rows[0]

	if v, ok := row.Number(ColQOP); !ok || v != 1250.5 {
		t.Errorf("QOP = %v, %v, want 1250.5", v, ok)
	}
	if _, ok := row.Number(ColQGP); ok {
		t.Error("QGP set, want null for empty value")
	}
	if _, ok := row.Number(ColWPAV); ok {
		t.Error("WPAV set, want null for non-numeric value")
	}
	if v, ok := row.Number(ColBHP); !ok || v != 42 {
		t.Errorf("BHP = %v, %v, want 42", v, ok)
	}
	// Never written by any pass
	if _, ok := row.Number(ColSAL); ok {
		t.Error("SAL set, want null")
	}
	if row.Text[ColStatus] != "ON" {
		t.Errorf("STATUS = %q, want ON", row.Text[ColStatus])
	}
	if !row.Date.Equal(date) {
		t.Errorf("Date = %v, want %v", row.Date, date)
	}
}

func TestFinalize_NonFiniteIsNull(t *testing.T) {
	tokens := []string{"NaN", "nan", "Inf", "-Inf", "+infinity", "0x1p3", "1e400"}
	columns := []string{ColQOP, ColQGP, ColQWP, ColGOR, ColBHP, ColTHP, ColSAL}

	table := NewTable()
	table.Upsert(Key{Well: "P1", Time: 1}, time.Time{}, columns, tokens)

	result, err := Finalize(table)
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	row := result.Rows[0]
	for i, col := range columns {
		if v, ok := row.Number(col); ok {
			t.Errorf("%s from %q = %v, want null", col, tokens[i], v)
		}
		if row.Numbers[col] != nil {
			t.Errorf("%s from %q stored as non-nil", col, tokens[i])
		}
	}
}

func TestRow_NumberIgnoresNonFinite(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	row := &Row{Numbers: map[string]*float64{ColGOR: &nan, ColQOP: &inf}}

	if _, ok := row.Number(ColGOR); ok {
		t.Error("Number(GOR) set for NaN")
	}
	if _, ok := row.Number(ColQOP); ok {
		t.Error("Number(QOP) set for +Inf")
	}
}

func TestFinalize_SortsAndFlattens(t *testing.T) {
	table := NewTable()
	table.Reservoirs = []string{"NORTH", "SOUTH"}
	table.Upsert(Key{Reservoir: "SOUTH", Well: "A", Time: 30}, time.Time{}, nil, nil)
	table.Upsert(Key{Reservoir: "NORTH", Well: "B", Time: 30}, time.Time{}, nil, nil)
	table.Upsert(Key{Reservoir: "NORTH", Well: "A", Time: 10}, time.Time{}, nil, nil)

	result, err := Finalize(table)
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	want := []struct {
		reservoir, well string
		time            float64
	}{
		{"NORTH", "A", 10},
		{"NORTH", "B", 30},
		{"SOUTH", "A", 30},
	}
	if len(result.Rows) != len(want) {
		t.Fatalf("len(Rows) = %d, want %d", len(result.Rows), len(want))
	}
	for i, w := range want {
		r := result.Rows[i]
		if r.Reservoir != w.reservoir || r.Well != w.well || r.Time != w.time {
			t.Errorf("Rows[%d] = %s/%s/%v, want %s/%s/%v", i, r.Reservoir, r.Well, r.Time, w.reservoir, w.well, w.time)
		}
	}
	if !result.MultiReservoir() {
		t.Error("MultiReservoir() = false, want true")
	}
}

func TestFinalize_DoesNotAliasReservoirs(t *testing.T) {
	table := NewTable()
	table.Reservoirs = []string{"NORTH"}
	table.Upsert(Key{Well: "A"}, time.Time{}, nil, nil)

	result, err := Finalize(table)
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	table.Reservoirs[0] = "CHANGED"
	if result.Reservoirs[0] != "NORTH" {
		t.Errorf("Reservoirs[0] = %q, want NORTH", result.Reservoirs[0])
	}
}
