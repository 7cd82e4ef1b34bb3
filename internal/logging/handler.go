// Package logging provides the slog handler used by every command.
package logging

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"

	"github.com/fatih/color"
)

// Handler writes one line per record: time, level, message, then key=value
// attributes. Levels and keys are coloured unless colour is disabled.
type Handler struct {
	l      *log.Logger
	level  slog.Leveler
	attrs  []slog.Attr
	group  string
	colors bool
}

// NewHandler creates a Handler writing to out at or above level.
func NewHandler(out io.Writer, level slog.Leveler, colors bool) *Handler {
	return &Handler{
		l:      log.New(out, "", 0),
		level:  level,
		colors: colors,
	}
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"

	if h.colors {
		switch {
		case r.Level >= slog.LevelError:
			level = color.RedString(level)
		case r.Level >= slog.LevelWarn:
			level = color.YellowString(level)
		case r.Level >= slog.LevelInfo:
			level = color.HiBlueString(level)
		default:
			level = color.MagentaString(level)
		}
	}

	var b strings.Builder
	write := func(a slog.Attr) {
		if a.Equal(slog.Attr{}) {
			return
		}
		key := a.Key
		if h.group != "" {
			key = h.group + "." + key
		}
		if h.colors {
			key = color.GreenString(key)
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(fmt.Sprint(a.Value.Resolve().Any()))
		b.WriteByte(' ')
	}
	for _, a := range h.attrs {
		write(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		write(a)
		return true
	})

	h.l.Println(
		r.Time.Format("15:04:05.000"),
		level,
		r.Message,
		strings.TrimSuffix(b.String(), " "),
	)
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	if h.group != "" {
		clone.group = h.group + "." + name
	} else {
		clone.group = name
	}
	return &clone
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}
