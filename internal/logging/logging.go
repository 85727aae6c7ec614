// Package logging builds the slog loggers used by the solvers and the CLI.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Format is the log output format
type Format string

const (
	// HumanFormat writes key=value text lines
	HumanFormat Format = "human"
	// JSONFormat writes one JSON object per line
	JSONFormat Format = "json"
)

// levelSilent is above every standard level.
const levelSilent = slog.Level(100)

// New creates a logger writing to w at the given level.
func New(w io.Writer, level slog.Level, format Format) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == JSONFormat {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Discard creates a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: levelSilent}))
}

// LevelFromString converts debug, info, warn or error (case-insensitive).
// Unknown strings map to info.
func LevelFromString(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LevelFromVerbosity converts CLI flags to a level.
//   - quiet: nothing is logged
//   - 0: the configured level
//   - 1: info
//   - 2 or more: debug
func LevelFromVerbosity(verbosity int, quiet bool, configured slog.Level) slog.Level {
	if quiet {
		return levelSilent
	}
	switch {
	case verbosity <= 0:
		return configured
	case verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// ParseFormat converts a format name; anything other than json is human.
func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), string(JSONFormat)) {
		return JSONFormat
	}
	return HumanFormat
}
