package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrNoTimestamp is returned when a line matches none of the date conventions.
var ErrNoTimestamp = errors.New("timestamp pattern did not match")

// DateConvention describes one way a report prints its simulation date.
// The pattern must capture the date in group 1 and the time-step value
// (days since start) in group 2.
type DateConvention struct {
	Name    string
	Pattern *regexp.Regexp
	Layout  string
}

// Date conventions printed by Nexus below each summary banner.
var (
	USDateConvention = DateConvention{
		Name:    "MO/DAY/YR",
		Pattern: regexp.MustCompile(`^\s+MO/DAY/YR:\s+([0-9]{2}/[0-9]{2}/[0-9]{4})\s+([0-9.]+)`),
		Layout:  "01/02/2006",
	}
	EUDateConvention = DateConvention{
		Name:    "DAY/MO/YR",
		Pattern: regexp.MustCompile(`^\s+DAY/MO/YR:\s+([0-9]{2}/[0-9]{2}/[0-9]{4})\s+([0-9.]+)`),
		Layout:  "02/01/2006",
	}
)

// Timestamp is a simulation date paired with its time-step value.
type Timestamp struct {
	Date time.Time
	Time float64
}

// TimestampExtractor extracts timestamps using a fixed list of conventions.
type TimestampExtractor struct {
	conventions []DateConvention
}

// NewTimestampExtractor creates an extractor trying conventions in order.
// With no arguments the US then EU conventions are used.
func NewTimestampExtractor(conventions ...DateConvention) *TimestampExtractor {
	if len(conventions) == 0 {
		conventions = []DateConvention{USDateConvention, EUDateConvention}
	}
	return &TimestampExtractor{conventions: conventions}
}

// Extract parses the timestamp on a line using the first matching convention.
// Returns ErrNoTimestamp if no convention matches.
func (e *TimestampExtractor) Extract(line string) (Timestamp, error) {
	for _, c := range e.conventions {
		matches := c.Pattern.FindStringSubmatch(line)
		if len(matches) < 3 {
			continue
		}

		date, err := time.Parse(c.Layout, matches[1])
		if err != nil {
			return Timestamp{}, fmt.Errorf("parsing %s date %q: %w", c.Name, matches[1], err)
		}

		step, err := strconv.ParseFloat(matches[2], 64)
		if err != nil {
			return Timestamp{}, fmt.Errorf("parsing time value %q: %w", matches[2], err)
		}

		return Timestamp{Date: date, Time: step}, nil
	}

	return Timestamp{}, ErrNoTimestamp
}
