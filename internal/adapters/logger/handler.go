package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/mvnconf/internal/ui/output"
	"go.trai.ch/mvnconf/internal/ui/style"
)

// detailIndent prefixes every attribute line below a record's message.
const detailIndent = "    "

// PrettyHandler is a slog.Handler for terminals. The first message line carries
// the level mark and colour; further message lines are written as they are, and
// attributes follow as one "key: value" line each.
type PrettyHandler struct {
	mu     *sync.Mutex
	out    *termenv.Output
	level  slog.Leveler
	attrs  []slog.Attr
	prefix string
}

// NewPrettyHandler creates a PrettyHandler writing to w (stderr when nil).
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		mu:    &sync.Mutex{},
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	head, rest, _ := strings.Cut(r.Message, "\n")

	var b strings.Builder
	b.WriteString(output.Paint(h.out, levelMark(r.Level)+head, levelColor(r.Level)))
	b.WriteByte('\n')
	if rest != "" {
		b.WriteString(rest)
		b.WriteByte('\n')
	}

	details := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		details = appendDetail(details, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		details = appendDetail(details, h.prefix, a)
		return true
	})
	for _, d := range details {
		b.WriteString(output.Paint(h.out, detailIndent+d, style.Slate))
		b.WriteByte('\n')
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

// WithAttrs returns a Handler that also writes attrs. Keys are qualified with
// the current group.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	clone := *h
	clone.attrs = make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(clone.attrs, h.attrs)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		clone.attrs = append(clone.attrs, a)
	}
	return &clone
}

// WithGroup returns a Handler that qualifies later attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func levelMark(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return style.Cross + " "
	case level >= slog.LevelWarn:
		return style.Warning + " "
	default:
		return ""
	}
}

func levelColor(level slog.Level) style.Color {
	switch {
	case level >= slog.LevelError:
		return style.Red
	case level >= slog.LevelWarn:
		return style.Yellow
	default:
		return style.Slate
	}
}

// appendDetail flattens groups into dotted keys and skips empty attributes.
func appendDetail(details []string, prefix string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return details
	}

	if a.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if a.Key != "" {
			groupPrefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			details = appendDetail(details, groupPrefix, ga)
		}
		return details
	}

	return append(details, prefix+a.Key+": "+detailValue(a.Value))
}

// detailValue quotes values that would be ambiguous on a line of their own.
func detailValue(v slog.Value) string {
	s := v.String()
	if s == "" || strings.TrimSpace(s) != s || strings.ContainsAny(s, "\n\"") {
		return strconv.Quote(s)
	}
	return s
}
