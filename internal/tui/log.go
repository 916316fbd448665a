package tui

import (
	"fmt"
	"io"
	"log"
	"os"
)

// NewLogger opens the diagnostics log for the terminal frontend. The screen owns
// the terminal, so with no path the output is discarded instead of going to stderr.
func NewLogger(path string) (*log.Logger, func() error, error) {
	if path == "" {
		return log.New(io.Discard, "absorb: ", log.LstdFlags), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	return log.New(f, "absorb: ", log.LstdFlags), f.Close, nil
}
