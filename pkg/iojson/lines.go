package iojson

import (
	"fmt"
	"os"
	"path/filepath"
)

// LineWriter appends one JSON document per line to a file.
type LineWriter struct {
	f *os.File
}

// OpenLines opens path for appending, creating it and its directory when
// missing.
func OpenLines(path string) (*LineWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	return &LineWriter{f: f}, nil
}

// Write encodes obj as a single line.
func (lw *LineWriter) Write(obj any) error {
	if err := WriteLine(lw.f, obj); err != nil {
		return fmt.Errorf("write json line: %w", err)
	}
	return nil
}

func (lw *LineWriter) Close() error {
	return lw.f.Close()
}
