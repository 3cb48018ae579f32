// Package logger configures the process-wide slog logger.
//
// By default records are written through a compact colorized handler meant
// for terminals; setting LOG_FORMAT=json switches to slog's JSON handler.
// LOG_LEVEL accepts debug, warn, and error (default info).
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	once   sync.Once
	logger *slog.Logger
)

const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	gray   = "\033[90m"
)

// PrettyHandler renders records as "HH:MM:SS LVL message key=value".
type PrettyHandler struct {
	w     io.Writer
	level slog.Leveler
	mu    sync.Mutex
}

func NewPrettyHandler(w io.Writer, level slog.Level) *PrettyHandler {
	return &PrettyHandler{w: w, level: level}
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var levelColor, levelText string
	switch r.Level {
	case slog.LevelDebug:
		levelColor, levelText = gray, "DBG"
	case slog.LevelInfo:
		levelColor, levelText = green, "INF"
	case slog.LevelWarn:
		levelColor, levelText = yellow, "WRN"
	case slog.LevelError:
		levelColor, levelText = red, "ERR"
	}

	fmt.Fprintf(h.w, "%s%s%s %s%-3s%s %s",
		gray, r.Time.Format("15:04:05"), reset,
		levelColor, levelText, reset,
		r.Message,
	)

	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(h.w, " %s%s%s=%v", cyan, a.Key, reset, a.Value)
		return true
	})

	fmt.Fprintln(h.w)
	return nil
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return h
}

// Init builds the process logger from LOG_FORMAT and LOG_LEVEL and installs
// it as the slog default. Subsequent calls return the same logger.
func Init() *slog.Logger {
	once.Do(func() {
		level := slog.LevelInfo
		switch os.Getenv("LOG_LEVEL") {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}

		var handler slog.Handler
		if os.Getenv("LOG_FORMAT") == "json" {
			handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		} else {
			handler = NewPrettyHandler(os.Stderr, level)
		}

		logger = slog.New(handler)
		slog.SetDefault(logger)
	})
	return logger
}
