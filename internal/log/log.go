// Package log builds the process logger.
package log

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Options selects the handler the logger writes through.
type Options struct {
	// Level is one of "debug", "info", "warn", "error". Unknown values
	// fall back to "info".
	Level string

	// Format is "text" for colorized console output or "json" for one
	// JSON object per line.
	Format string
}

// New returns a logger writing to w with the given options.
func New(w io.Writer, opts Options) *slog.Logger {
	level := parseLevel(opts.Level)

	var handler slog.Handler
	if strings.EqualFold(opts.Format, "json") {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.RFC3339,
		})
	}
	return slog.New(handler)
}

// parseLevel maps a config string to a slog level.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
