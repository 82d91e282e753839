package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Level{
		"debug":   log.DebugLevel,
		" INFO ":  log.InfoLevel,
		"warn":    log.WarnLevel,
		"error":   log.ErrorLevel,
		"Fatal":   log.FatalLevel,
		"WARN":    log.WarnLevel,
		"":        log.WarnLevel,
		"verbose": log.WarnLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")
	logger.Info("hidden")
	logger.Warn("shown", "key", "taskboard_state")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, Prefix) {
		t.Fatalf("expected prefixed warn line, got %q", out)
	}
}
