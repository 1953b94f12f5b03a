package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/pkgsweep/internal/ui/output"
	"go.trai.ch/pkgsweep/internal/ui/style"
)

// levelLook is how records of one level are rendered.
type levelLook struct {
	icon  string
	color lipgloss.Color
}

func lookFor(level slog.Level) levelLook {
	switch {
	case level >= slog.LevelError:
		return levelLook{icon: style.Cross, color: style.Red}
	case level >= slog.LevelWarn:
		return levelLook{icon: style.Warning, color: style.Yellow}
	case level >= slog.LevelInfo:
		return levelLook{color: style.White}
	default:
		return levelLook{icon: style.Tilde, color: style.Slate}
	}
}

// PrettyHandler is a slog.Handler writing one coloured line per record.
// Spans quoted in backticks, which name paths, packages and versions, are
// set in bold. Attributes follow the message in a faint key=value list.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a PrettyHandler writing to w. Colors are only
// used when w is a terminal and NO_COLOR is unset.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.NewWithProfile(w, func() termenv.Profile { return output.ProfileFor(w) }),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record as a single line.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	look := lookFor(r.Level)
	color := termenv.RGBColor(string(look.color))

	var b strings.Builder
	if look.icon != "" {
		b.WriteString(h.out.String(look.icon + " ").Foreground(color).String())
	}
	b.WriteString(h.emphasize(r.Message, color))

	if attrs := h.formatAttrs(r); attrs != "" {
		b.WriteString(" ")
		b.WriteString(h.out.String(attrs).Foreground(termenv.RGBColor(string(style.Slate))).Faint().String())
	}
	b.WriteString("\n")

	_, err := h.out.WriteString(b.String())
	return err
}

// emphasize colours msg and sets its backtick-quoted spans in bold. A message
// with an unbalanced backtick is coloured as a whole.
func (h *PrettyHandler) emphasize(msg string, color termenv.Color) string {
	parts := strings.Split(msg, "`")
	if len(parts)%2 == 0 {
		return h.out.String(msg).Foreground(color).String()
	}

	var b strings.Builder
	for i, part := range parts {
		if i%2 == 0 {
			if part != "" {
				b.WriteString(h.out.String(part).Foreground(color).String())
			}
			continue
		}
		b.WriteString(h.out.String("`" + part + "`").Foreground(color).Bold().String())
	}
	return b.String()
}

// formatAttrs joins the handler and record attributes as key=value pairs.
// Handler attributes carry the group that was open when they were added.
//
//nolint:gocritic // slog.Record is passed by value throughout slog
func (h *PrettyHandler) formatAttrs(r slog.Record) string {
	parts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, attr := range h.attrs {
		parts = append(parts, attr.Key+"="+attr.Value.String())
	}
	r.Attrs(func(attr slog.Attr) bool {
		parts = append(parts, h.qualify(attr.Key)+"="+attr.Value.String())
		return true
	})
	return strings.Join(parts, " ")
}

func (h *PrettyHandler) qualify(key string) string {
	if h.group == "" {
		return key
	}
	return h.group + "." + key
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, attr := range attrs {
		clone.attrs = append(clone.attrs, slog.Attr{Key: h.qualify(attr.Key), Value: attr.Value})
	}
	return &clone
}

// WithGroup returns a new Handler with the given group name nested in the
// current one.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.group = h.qualify(name)
	return &clone
}
