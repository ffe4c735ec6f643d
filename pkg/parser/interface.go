package parser

import (
	"context"
)

// LineSource provides a forward-only iterator over report lines.
// Implementations must be safe for sequential access (not concurrent).
type LineSource interface {
	// Next returns the next line.
	// Returns io.EOF when no more lines are available.
	Next(ctx context.Context) (*Line, error)

	// Skip discards the next n lines. Reaching the end of the input
	// while skipping returns io.EOF.
	Skip(ctx context.Context, n int) error

	// Close releases any resources held by the source.
	Close() error
}
