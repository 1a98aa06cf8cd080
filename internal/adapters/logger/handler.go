package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/postpub/internal/ui/output"
	"go.trai.ch/postpub/internal/ui/style"
)

// PrettyHandler is a slog.Handler writing one colored line per record, followed by the
// record attributes as faint key=value pairs.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	prefix string
	attrs  []string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
// A *slog.LevelVar passed in opts is kept, so later level changes apply.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := levelStyle(r.Level)
	msg := r.Message
	if icon != "" {
		msg = icon + " " + msg
	}

	line := h.out.String(msg)
	if color != "" {
		line = line.Foreground(h.out.Color(color))
	}
	if r.Level < slog.LevelInfo {
		line = line.Faint()
	}

	attrs := h.attrs
	r.Attrs(func(attr slog.Attr) bool {
		attrs = appendAttr(attrs, h.prefix, attr)
		return true
	})

	var b strings.Builder
	b.WriteString(line.String())
	if len(attrs) > 0 {
		b.WriteByte(' ')
		b.WriteString(h.out.String(strings.Join(attrs, " ")).Foreground(h.out.Color(string(style.Muted))).String())
	}
	b.WriteByte('\n')

	_, err := h.out.WriteString(b.String())
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append([]string(nil), h.attrs...)
	for _, attr := range attrs {
		clone.attrs = appendAttr(clone.attrs, h.prefix, attr)
	}
	return &clone
}

// WithGroup returns a new Handler qualifying later attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

// levelStyle returns the icon and color of a level. Info lines are left uncolored.
func levelStyle(level slog.Level) (string, string) {
	switch {
	case level < slog.LevelInfo:
		return "", string(style.Muted)
	case level < slog.LevelWarn:
		return "", ""
	case level < slog.LevelError:
		return style.Warning, string(style.Yellow)
	default:
		return style.Cross, string(style.Red)
	}
}

// appendAttr renders attr as key=value. Group values are flattened with dotted keys and
// values containing spaces or quotes are quoted.
func appendAttr(parts []string, prefix string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return parts
	}
	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			prefix += attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			parts = appendAttr(parts, prefix, member)
		}
		return parts
	}

	value := attr.Value.String()
	if strings.ContainsAny(value, " \t\n\"") {
		value = strconv.Quote(value)
	}
	return append(parts, prefix+attr.Key+"="+value)
}
