// Package xlog wraps log/slog with a small custom handler, the way the
// pack's mainframe emulator (rcornwell-S370's util/logger) wraps slog for
// readable CLI output: one line per record, optional mirroring to
// stderr. The handler itself is generic: it formats whatever records it
// is given and has no sixfive-specific handling.
package xlog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Handler is a slog.Handler that renders one line per record to a
// configured writer, and additionally mirrors warnings and errors (or
// everything, if Debug is set) to stderr.
type Handler struct {
	out   io.Writer
	inner slog.Handler
	mu    *sync.Mutex
	debug bool
}

// New returns a Handler writing to out at the given level. When debug is
// true, every record (not just warnings and errors) is also mirrored to
// stderr.
func New(out io.Writer, level slog.Level, debug bool) *Handler {
	return &Handler{
		out:   out,
		inner: slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}),
		mu:    &sync.Mutex{},
		debug: debug,
	}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{out: h.out, inner: h.inner.WithAttrs(attrs), mu: h.mu, debug: h.debug}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{out: h.out, inner: h.inner.WithGroup(name), mu: h.mu, debug: h.debug}
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	line := []string{r.Time.Format("2006-01-02 15:04:05"), r.Level.String() + ":", r.Message}
	r.Attrs(func(a slog.Attr) bool {
		line = append(line, a.String())
		return true
	})
	out := strings.Join(line, " ") + "\n"

	h.mu.Lock()
	defer h.mu.Unlock()

	var err error
	if h.out != nil {
		_, err = io.WriteString(h.out, out)
	}
	if h.debug || r.Level >= slog.LevelWarn {
		_, _ = io.WriteString(os.Stderr, out)
	}
	return err
}

// NewLogger returns a slog.Logger ready to use, the way most sixfive
// commands want it: one call to get a logger, no handler plumbing at the
// call site.
func NewLogger(out io.Writer, level slog.Level, debug bool) *slog.Logger {
	return slog.New(New(out, level, debug))
}
