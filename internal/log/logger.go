// Package log configures structured logging for the catalog service.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/helixml/catalog/internal/config"
)

type correlationKey struct{}

// New builds a logger for cfg writing to w. Records logged with a context
// carrying a correlation id include it as the correlation_id attribute.
func New(w io.Writer, format config.LogFormat, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	switch format {
	case config.LogFormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = newConsoleHandler(w, opts)
	}
	return slog.New(contextHandler{next: handler})
}

// Configure builds a logger from cfg and installs it as the slog default.
// Output goes to stderr so that stdout stays free for the MCP stdio transport.
func Configure(cfg config.AppConfig) *slog.Logger {
	l := New(os.Stderr, cfg.LogFormat(), cfg.LogLevel())
	slog.SetDefault(l)
	return l
}

// ParseLevel maps a level name to a slog.Level. Unknown names map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithCorrelationID returns a context carrying id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// CorrelationID returns the correlation id carried by ctx, or "".
func CorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationKey{}).(string); ok {
		return id
	}
	return ""
}

type contextHandler struct {
	next slog.Handler
}

func (h contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := CorrelationID(ctx); id != "" {
		r = r.Clone()
		r.AddAttrs(slog.String("correlation_id", id))
	}
	return h.next.Handle(ctx, r)
}

func (h contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return contextHandler{next: h.next.WithAttrs(attrs)}
}

func (h contextHandler) WithGroup(name string) slog.Handler {
	return contextHandler{next: h.next.WithGroup(name)}
}
