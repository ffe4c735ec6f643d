package extract

import (
	"testing"
	"time"
)

func TestTable_UpsertSetsDateOnce(t *testing.T) {
	table := NewTable()
	key := Key{Well: "P1", Time: 30}
	first := time.Date(2020, 1, 31, 0, 0, 0, 0, time.UTC)
	second := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)

	table.Upsert(key, first, []string{ColStatus}, []string{"ON"})
	table.Upsert(key, second, []string{ColQOP}, []string{"100.0"})

	rec, ok := table.Get(key)
	if !ok {
		t.Fatal("Get() found no record")
	}
	if !rec.Date.Equal(first) {
		t.Errorf("Date = %v, want %v", rec.Date, first)
	}
	if rec.Values[ColStatus] != "ON" || rec.Values[ColQOP] != "100.0" {
		t.Errorf("Values = %v, want both passes merged", rec.Values)
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", table.Len())
	}
}

func TestTable_UpsertOverwritesColumns(t *testing.T) {
	table := NewTable()
	key := Key{Well: "P1", Time: 30}

	table.Upsert(key, time.Time{}, []string{ColStatus, ColWPAV}, []string{"ON", "2500"})
	table.Upsert(key, time.Time{}, []string{ColStatus}, []string{"SHUTIN"})

	rec, _ := table.Get(key)
	if rec.Values[ColStatus] != "SHUTIN" {
		t.Errorf("STATUS = %q, want SHUTIN", rec.Values[ColStatus])
	}
	if rec.Values[ColWPAV] != "2500" {
		t.Errorf("WPAV = %q, want untouched 2500", rec.Values[ColWPAV])
	}
}

func TestTable_UpsertMissingValues(t *testing.T) {
	table := NewTable()
	key := Key{Well: "P1"}

	table.Upsert(key, time.Time{}, []string{ColStatus, ColStatusReason}, []string{"ON"})

	rec, _ := table.Get(key)
	v, ok := rec.Values[ColStatusReason]
	if !ok || v != "" {
		t.Errorf("STATUS_REASON = %q (set %v), want empty string", v, ok)
	}
}

func TestTable_ExactKeyMatch(t *testing.T) {
	table := NewTable()
	table.Upsert(Key{Well: "P1", Time: 30}, time.Time{}, nil, nil)
	table.Upsert(Key{Well: "P10", Time: 30}, time.Time{}, nil, nil)
	table.Upsert(Key{Reservoir: "NORTH", Well: "P1", Time: 30}, time.Time{}, nil, nil)

	if table.Len() != 3 {
		t.Errorf("Len() = %d, want 3 distinct keys", table.Len())
	}
}

func TestTable_KeysSorted(t *testing.T) {
	table := NewTable()
	for _, k := range []Key{
		{Reservoir: "SOUTH", Well: "P1", Time: 60},
		{Reservoir: "SOUTH", Well: "P2", Time: 30},
		{Reservoir: "NORTH", Well: "P9", Time: 30},
		{Reservoir: "NORTH", Well: "P1", Time: 30},
	} {
		table.Upsert(k, time.Time{}, nil, nil)
	}

	want := []Key{
		{Reservoir: "NORTH", Well: "P1", Time: 30},
		{Reservoir: "NORTH", Well: "P9", Time: 30},
		{Reservoir: "SOUTH", Well: "P2", Time: 30},
		{Reservoir: "SOUTH", Well: "P1", Time: 60},
	}
	got := table.Keys()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
