package config

import (
	"io"
	"log/slog"
	"os"

	"partnerevents/internal/observability"
)

// NewLogger returns a slog.Logger writing to stdout. See NewLoggerTo.
func NewLogger(cfg *Config) *slog.Logger {
	return NewLoggerTo(os.Stdout, cfg)
}

// NewLoggerTo returns a slog.Logger configured from the environment and log level.
// Production uses JSON handler; otherwise text handler.
// Records logged with a span in context carry trace_id and span_id.
func NewLoggerTo(w io.Writer, cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}
	var h slog.Handler
	if cfg.IsProduction() {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(observability.NewTraceHandler(h)).With("service", cfg.ServiceName)
}

func parseLevel(s string) slog.Level {
	switch s {
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
