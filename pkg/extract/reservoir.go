package extract

import (
	"regexp"
)

var (
	totalPattern          = regexp.MustCompile(`^\s+Total`)
	totalAllPattern       = regexp.MustCompile(`^\s+Total\s+All\s+Reservoirs`)
	totalReservoirPattern = regexp.MustCompile(`^\s+Total\s+(\w+)(\s|$)`)
)

// noReservoir is the cursor position when no reservoir is active.
const noReservoir = -1

// ReservoirCursor tracks which reservoir the well rows of a section belong to.
// Per-reservoir subtotals appear in reservoir-list order, so each
// "Total <name>" line moves the cursor to the entry after <name>.
type ReservoirCursor struct {
	reservoirs []string
	pos        int
}

// NewReservoirCursor creates a cursor over reservoirs, positioned at the
// first entry.
func NewReservoirCursor(reservoirs []string) *ReservoirCursor {
	c := &ReservoirCursor{reservoirs: reservoirs}
	c.Reset()
	return c
}

// Reset moves the cursor back to the first reservoir, as at the start of a
// section.
func (c *ReservoirCursor) Reset() {
	if len(c.reservoirs) > 0 {
		c.pos = 0
	} else {
		c.pos = noReservoir
	}
}

// Current returns the active reservoir, or "" when none is active.
func (c *ReservoirCursor) Current() string {
	if c.pos == noReservoir {
		return ""
	}
	return c.reservoirs[c.pos]
}

// Advance moves past the subtotal of the named reservoir. Past the last entry
// no reservoir is active. An unknown name also leaves no reservoir active and
// returns false.
func (c *ReservoirCursor) Advance(name string) bool {
	for i, r := range c.reservoirs {
		if r == name {
			if i+1 < len(c.reservoirs) {
				c.pos = i + 1
			} else {
				c.pos = noReservoir
			}
			return true
		}
	}
	c.pos = noReservoir
	return false
}

// totalKind classifies a line against the "Total" markers.
type totalKind int

const (
	totalNone totalKind = iota
	totalEndOfSection
	totalSubtotal
)

// classifyTotal decides whether a line is a grand total that ends the section
// or a reservoir subtotal. With exactly one declared reservoir no Total line
// ends a section.
func classifyTotal(line string, reservoirs int) totalKind {
	if !totalPattern.MatchString(line) {
		return totalNone
	}
	if reservoirs == 0 || (reservoirs > 1 && totalAllPattern.MatchString(line)) {
		return totalEndOfSection
	}
	return totalSubtotal
}

// subtotalReservoir returns the reservoir named by a subtotal line.
func subtotalReservoir(line string) (string, bool) {
	m := totalReservoirPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}
