package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorFaint  = "\033[2m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
)

// consoleHandler writes one coloured line per record:
//
//	10:30:45.123 INF assignment saved kind=product entity_id=4
type consoleHandler struct {
	w      io.Writer
	level  slog.Leveler
	prefix string
	attrs  []byte
	mu     *sync.Mutex
}

func newConsoleHandler(w io.Writer, opts *slog.HandlerOptions) *consoleHandler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &consoleHandler{w: w, level: level, mu: &sync.Mutex{}}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	buf := bytes.NewBuffer(make([]byte, 0, 256))

	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	buf.WriteString(colorFaint + ts.Format("15:04:05.000") + colorReset + " ")

	color, label := levelLabel(r.Level)
	buf.WriteString(color + label + colorReset + " ")
	buf.WriteString(r.Message)
	buf.Write(h.attrs)

	r.Attrs(func(a slog.Attr) bool {
		writeAttr(buf, h.prefix, a)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf.Bytes())
	return err
}

// WithAttrs pre-renders attrs so they are not formatted again per record.
func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	buf := bytes.NewBuffer(append([]byte(nil), h.attrs...))
	for _, a := range attrs {
		writeAttr(buf, h.prefix, a)
	}
	clone := *h
	clone.attrs = buf.Bytes()
	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func levelLabel(level slog.Level) (string, string) {
	switch {
	case level < slog.LevelInfo:
		return colorBlue, "DBG"
	case level < slog.LevelWarn:
		return colorGreen, "INF"
	case level < slog.LevelError:
		return colorYellow, "WRN"
	default:
		return colorRed, "ERR"
	}
}

func writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			writeAttr(buf, prefix, ga)
		}
		return
	}

	buf.WriteString(" " + colorFaint + prefix + a.Key + "=" + colorReset)
	buf.WriteString(attrValue(a.Value))
}

func attrValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		if s == "" || strings.ContainsAny(s, " \t\n\"\\=") {
			return strconv.Quote(s)
		}
		return s
	case slog.KindDuration:
		return v.Duration().String()
	default:
		return v.String()
	}
}
