package parser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineSize bounds a single report line. Nexus reports are wide but never
// close to this.
const maxLineSize = 1024 * 1024

// ReaderSource implements LineSource over an io.Reader.
type ReaderSource struct {
	scanner *bufio.Scanner
	closer  io.Closer
	source  string
	lineNum int
}

// NewReaderSource creates a LineSource reading from r. The name is reported
// as the Source of every returned line.
func NewReaderSource(r io.Reader, name string) *ReaderSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &ReaderSource{
		scanner: scanner,
		source:  name,
	}
}

// Open creates a LineSource reading from the file at path.
// The caller must Close it.
func Open(path string) (*ReaderSource, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening report file %s: %w", path, err)
	}

	s := NewReaderSource(f, path)
	s.closer = f
	return s, nil
}

// Next returns the next line.
// Returns io.EOF when the input is exhausted.
func (s *ReaderSource) Next(ctx context.Context) (*Line, error) {
	// Check for context cancellation
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", s.source, err)
		}
		return nil, io.EOF
	}

	s.lineNum++
	return &Line{
		Text:    strings.TrimRight(s.scanner.Text(), "\r"),
		Source:  s.source,
		LineNum: s.lineNum,
	}, nil
}

// Skip discards the next n lines.
func (s *ReaderSource) Skip(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if _, err := s.Next(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying file, if any.
func (s *ReaderSource) Close() error {
	if s.closer != nil {
		err := s.closer.Close()
		s.closer = nil
		return err
	}
	return nil
}
