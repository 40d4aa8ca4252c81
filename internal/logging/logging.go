// Package logging sets up the slog logger that appends diagnostics to the
// fasttrack log file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Canonical log field names shared across packages.
const (
	KeyAction   = "action"
	KeyOutcome  = "outcome"
	KeyReason   = "reason"
	KeyDuration = "duration"
	KeyPath     = "path"
	KeyError    = "error"
)

func Action(a string) slog.Attr   { return slog.String(KeyAction, a) }
func Outcome(o string) slog.Attr  { return slog.String(KeyOutcome, o) }
func Reason(r string) slog.Attr   { return slog.String(KeyReason, r) }
func Duration(d string) slog.Attr { return slog.String(KeyDuration, d) }
func Path(p string) slog.Attr     { return slog.String(KeyPath, p) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

// ParseLevel maps a config level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// New returns a text logger writing to w at level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// OpenFile opens path for appending, creating it and its parent directory
// if needed, and returns a logger writing to it. The returned closer must
// be called when the invocation ends.
func OpenFile(path, levelName string) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(levelName)
	if err != nil {
		return nil, nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	return New(f, level), f, nil
}
