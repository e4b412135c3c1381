package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestConsoleHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	h := newConsoleHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	ts := time.Date(2026, 1, 15, 10, 30, 45, 123000000, time.UTC)
	r := slog.NewRecord(ts, slog.LevelInfo, "assignment saved", 0)
	r.AddAttrs(slog.String("kind", "product"), slog.Int64("entity_id", 4))

	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"10:30:45.123", "INF", "assignment saved", "kind=", "product", "entity_id=", "4"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
	if !strings.HasSuffix(output, "\n") {
		t.Errorf("expected trailing newline, got: %q", output)
	}
}

func TestConsoleHandler_Levels(t *testing.T) {
	tests := []struct {
		level    slog.Level
		expected string
	}{
		{slog.LevelDebug, "DBG"},
		{slog.LevelInfo, "INF"},
		{slog.LevelWarn, "WRN"},
		{slog.LevelError, "ERR"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(newConsoleHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			logger.Log(context.Background(), tt.level, "msg")
			if !strings.Contains(buf.String(), tt.expected) {
				t.Errorf("expected %s, got: %s", tt.expected, buf.String())
			}
		})
	}
}

func TestConsoleHandler_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newConsoleHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level, got: %s", buf.String())
	}

	logger.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected warn output, got: %s", buf.String())
	}
}

func TestConsoleHandler_DefaultLevel(t *testing.T) {
	h := newConsoleHandler(&bytes.Buffer{}, nil)

	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug should be disabled by default")
	}
	if !h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be enabled by default")
	}
}

func TestConsoleHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newConsoleHandler(&buf, nil)).
		With("component", "api").
		WithGroup("request").
		With("method", "PUT")

	logger.Info("handled", "status", 200)

	output := buf.String()
	for _, want := range []string{"component=", "api", "request.method=", "PUT", "request.status=", "200"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestConsoleHandler_EmptyGroupIsIgnored(t *testing.T) {
	h := newConsoleHandler(&bytes.Buffer{}, nil)
	if h.WithGroup("") != slog.Handler(h) {
		t.Error("WithGroup(\"\") should return the same handler")
	}
}

func TestConsoleHandler_GroupAttr(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newConsoleHandler(&buf, nil))

	logger.Info("saved", slog.Group("value", slog.Int("id", 7), slog.String("slug", "red")))

	output := buf.String()
	if !strings.Contains(output, "value.id=") || !strings.Contains(output, "value.slug=") {
		t.Errorf("expected flattened group keys, got: %s", output)
	}
}

func TestAttrValue(t *testing.T) {
	tests := []struct {
		name  string
		value slog.Value
		want  string
	}{
		{"plain string", slog.StringValue("red"), "red"},
		{"string with space", slog.StringValue("dark red"), `"dark red"`},
		{"empty string", slog.StringValue(""), `""`},
		{"duration", slog.DurationValue(1500 * time.Millisecond), "1.5s"},
		{"int", slog.Int64Value(42), "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := attrValue(tt.value); got != tt.want {
				t.Errorf("attrValue() = %v, want %v", got, tt.want)
			}
		})
	}
}
