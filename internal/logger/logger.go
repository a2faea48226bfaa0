package logger

import (
	"errors"
	"io"
	"log/slog"
	"strings"
)

// New builds a slog logger writing to w.
// level: "debug", "info", "warn" or "error"
// format: "text" or "json"
func New(level, format string, w io.Writer) (*slog.Logger, error) {
	if strings.TrimSpace(level) == "" || strings.TrimSpace(format) == "" {
		return nil, errors.New("log level and format must not be empty")
	}

	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, errors.New("invalid log level: " + level)
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, errors.New("invalid log format: " + format)
	}

	return slog.New(handler), nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
