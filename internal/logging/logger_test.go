package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	td := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"DEBUG", slog.LevelDebug},
		{" trace ", LevelTrace},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, d := range td {
		if got := ParseLevel(d.in); got != d.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", d.in, got, d.want)
		}
	}
}

func TestNewLogger_trace(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("trace", &buf)
	l.Log(context.Background(), LevelTrace, "hello")
	if !strings.Contains(buf.String(), "level=TRACE") {
		t.Fatalf("trace level not labeled: %q", buf.String())
	}

	buf.Reset()
	l = NewLogger("info", &buf)
	l.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug output at info level: %q", buf.String())
	}
}
