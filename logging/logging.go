// SPDX-License-Identifier: MIT

// Package logging builds the *slog.Logger shared by the CLI and the batch
// runner. Terminals get colored tint output; anything else gets plain text,
// or JSON on request. Logs always go to a separate writer from results.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// TimeFormat is the timestamp layout of the text handler.
const TimeFormat = "15:04:05"

// Config selects handler, level and destination.
type Config struct {
	// Level is the minimum level emitted. Default slog.LevelInfo (zero value).
	Level slog.Level
	// JSON switches to slog.NewJSONHandler.
	JSON bool
	// Writer is the destination. Default os.Stderr.
	Writer io.Writer
	// NoColor forces plain text even on a terminal.
	NoColor bool
}

// New returns a logger for cfg.
func New(cfg Config) *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	if cfg.JSON {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.Level}))
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      cfg.Level,
		TimeFormat: TimeFormat,
		NoColor:    cfg.NoColor || !IsTerminal(w),
	}))
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ParseLevel maps debug, info, warn (or warning) and error, case-insensitively,
// to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
