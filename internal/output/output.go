package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPath is where the calendar document lands when no --output flag is
// given; the static hosting job publishes this file as-is.
const DefaultPath = "imp_concerts.ics"

// Writer persists calendar documents to disk.
type Writer struct {
	path string
}

// New creates a Writer for the given path, expanding a leading ~/ and
// creating the parent directory if needed.
func New(path string) (*Writer, error) {
	if path == "" {
		path = DefaultPath
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}

	return &Writer{path: path}, nil
}

// Path returns the resolved output path.
func (w *Writer) Path() string {
	return w.path
}

// Write replaces the calendar file with the given document.
func (w *Writer) Write(document string) error {
	if err := os.WriteFile(w.path, []byte(document), 0644); err != nil {
		return fmt.Errorf("writing calendar file: %w", err)
	}
	return nil
}
