package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// LevelKey is the attribute carrying the label on records produced by SlogLogger.
const LevelKey = "label"

type SlogLogger struct {
	logger *slog.Logger
}

type SlogOptions struct {
	Output io.Writer
	// Handler replaces the default line handler, e.g. slog.NewJSONHandler.
	Handler slog.Handler
}

func NewSlogLogger() Logger {
	return NewSlogLoggerWithOptions(SlogOptions{})
}

func NewSlogLoggerWithOptions(opts SlogOptions) Logger {
	h := opts.Handler
	if h == nil {
		h = &lineHandler{out: outputOrStdout(opts.Output), mu: &sync.Mutex{}}
	}
	return &SlogLogger{
		logger: slog.New(h),
	}
}

func (l *SlogLogger) Print(level, msg string) {
	l.logger.LogAttrs(context.Background(), slog.LevelInfo, msg, slog.String(LevelKey, level))
}

// lineHandler renders records as "[label] - msg" and drops everything else.
type lineHandler struct {
	out io.Writer
	mu  *sync.Mutex
}

func (h *lineHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	label := r.Level.String()
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == LevelKey {
			label = a.Value.String()
			return false
		}
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := fmt.Fprintf(h.out, "[%s] - %s\n", label, r.Message)
	return err
}

func (h *lineHandler) WithAttrs([]slog.Attr) slog.Handler {
	return h
}

func (h *lineHandler) WithGroup(string) slog.Handler {
	return h
}
