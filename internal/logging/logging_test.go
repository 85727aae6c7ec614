package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := LevelFromString(tt.in); got != tt.want {
			t.Errorf("LevelFromString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	if got := LevelFromVerbosity(0, false, slog.LevelWarn); got != slog.LevelWarn {
		t.Errorf("verbosity 0 = %v, want configured warn", got)
	}
	if got := LevelFromVerbosity(1, false, slog.LevelWarn); got != slog.LevelInfo {
		t.Errorf("verbosity 1 = %v, want info", got)
	}
	if got := LevelFromVerbosity(3, false, slog.LevelWarn); got != slog.LevelDebug {
		t.Errorf("verbosity 3 = %v, want debug", got)
	}
	if got := LevelFromVerbosity(3, true, slog.LevelWarn); got <= slog.LevelError {
		t.Errorf("quiet = %v, want above error", got)
	}
}

func TestNewWritesAtLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo, JSONFormat)
	logger.Debug("hidden")
	logger.Info("shown", "mode", "fixed-end")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message written at info level: %s", out)
	}
	if !strings.Contains(out, `"mode":"fixed-end"`) {
		t.Errorf("output = %s, want JSON attribute", out)
	}
}

func TestDiscard(t *testing.T) {
	if Discard().Enabled(context.Background(), slog.LevelError) {
		t.Error("Discard() logger should not be enabled")
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("JSON") != JSONFormat {
		t.Error("ParseFormat(JSON) should be json")
	}
	if ParseFormat("text") != HumanFormat {
		t.Error("ParseFormat(text) should be human")
	}
}
