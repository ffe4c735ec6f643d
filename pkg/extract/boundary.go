package extract

import "strings"

// Boundaries are the start offsets of the fixed-width fields of one section
// occurrence. Field i spans [b[i], b[i+1]); the last field runs to the end of
// the line.
type Boundaries []int

// InferBoundaries computes field offsets from a dashed separator line: a field
// starts wherever a dash follows a blank.
func InferBoundaries(sep string) Boundaries {
	var b Boundaries
	for i := 1; i < len(sep); i++ {
		if sep[i] == '-' && sep[i-1] == ' ' {
			b = append(b, i)
		}
	}
	return b
}

// Slice cuts a line into trimmed fields. Offsets past the end of a short line
// yield empty fields.
func (b Boundaries) Slice(line string) []string {
	fields := make([]string, len(b))
	for i, start := range b {
		end := len(line)
		if i+1 < len(b) {
			end = b[i+1]
		}
		if start >= len(line) {
			continue
		}
		if end > len(line) {
			end = len(line)
		}
		fields[i] = strings.TrimSpace(line[start:end])
	}
	return fields
}

func firstWord(s string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}
	return words[0]
}
