package extract

import "testing"

func TestReservoirCursor_Empty(t *testing.T) {
	c := NewReservoirCursor(nil)
	if got := c.Current(); got != "" {
		t.Errorf("Current() = %q, want empty", got)
	}
}

func TestReservoirCursor_Advance(t *testing.T) {
	c := NewReservoirCursor([]string{"NORTH", "SOUTH", "EAST"})

	if got := c.Current(); got != "NORTH" {
		t.Fatalf("Current() = %q, want NORTH", got)
	}

	steps := []struct {
		total string
		want  string
	}{
		{"NORTH", "SOUTH"},
		{"SOUTH", "EAST"},
		{"EAST", ""},
	}
	for _, s := range steps {
		if !c.Advance(s.total) {
			t.Errorf("Advance(%q) = false, want true", s.total)
		}
		if got := c.Current(); got != s.want {
			t.Errorf("after Advance(%q) Current() = %q, want %q", s.total, got, s.want)
		}
	}
}

func TestReservoirCursor_AdvanceUnknown(t *testing.T) {
	c := NewReservoirCursor([]string{"NORTH", "SOUTH"})

	if c.Advance("WEST") {
		t.Error("Advance(unknown) = true, want false")
	}
	if got := c.Current(); got != "" {
		t.Errorf("Current() = %q, want empty after unknown reservoir", got)
	}
}

func TestReservoirCursor_Reset(t *testing.T) {
	c := NewReservoirCursor([]string{"NORTH", "SOUTH"})
	c.Advance("NORTH")
	c.Reset()

	if got := c.Current(); got != "NORTH" {
		t.Errorf("Current() after Reset = %q, want NORTH", got)
	}
}

func TestClassifyTotal(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		reservoirs int
		want       totalKind
	}{
		{"data row", " P1          ON", 0, totalNone},
		{"no leading blank", "Total FIELD  1.0", 0, totalNone},
		{"single reservoir total", "   Total FIELD   1.0", 0, totalEndOfSection},
		{"subtotal", "   Total NORTH   1.0", 2, totalSubtotal},
		{"grand total", "   Total All Reservoirs   1.0", 2, totalEndOfSection},
		// One declared reservoir never ends the section on a Total line
		{"grand total with one reservoir", "   Total All Reservoirs   1.0", 1, totalSubtotal},
		{"subtotal with one reservoir", "   Total NORTH   1.0", 1, totalSubtotal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyTotal(tt.line, tt.reservoirs); got != tt.want {
				t.Errorf("classifyTotal(%q, %d) = %v, want %v", tt.line, tt.reservoirs, got, tt.want)
			}
		})
	}
}

func TestSubtotalReservoir(t *testing.T) {
	name, ok := subtotalReservoir("   Total NORTH      1.0")
	if !ok || name != "NORTH" {
		t.Errorf("subtotalReservoir() = %q, %v, want NORTH, true", name, ok)
	}

	// Lines come without their terminator, so a bare name ends the line
	name, ok = subtotalReservoir("   Total NORTH")
	if !ok || name != "NORTH" {
		t.Errorf("subtotalReservoir(bare) = %q, %v, want NORTH, true", name, ok)
	}

	if _, ok := subtotalReservoir("   TotalNORTH   1.0"); ok {
		t.Error("subtotalReservoir() matched without a blank after Total")
	}
}
