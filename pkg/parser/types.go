// Package parser provides line-oriented reading of simulator report files.
package parser

// Line is a single report line with its position.
type Line struct {
	// Text is the line content without the trailing newline.
	Text string

	// Source is the file path (or reader name) this line came from.
	Source string

	// LineNum is the 1-based line number in the source.
	LineNum int
}
