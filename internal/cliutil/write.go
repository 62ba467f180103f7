// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/erraggy/apidoc2ts/parser"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// NewLogger returns the logger used by commands. Without verbose output
// it discards everything; with it, debug records go to w as slog text.
func NewLogger(w io.Writer, verbose bool) parser.Logger {
	if !verbose {
		return parser.NopLogger{}
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return parser.NewSlogAdapter(slog.New(handler))
}
