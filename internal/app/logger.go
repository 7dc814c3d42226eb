package app

import (
	"log/slog"
	"os"
	"strings"

	"github.com/lunarbyte/flashdeck-backend/internal/config"
)

// NewLogger builds the process-wide *slog.Logger from LogConfig and installs
// it via slog.SetDefault.
//
// "json" format emits structured records for production; anything else falls
// back to the text handler with source locations for development. Levels are
// debug/info/warn/error, case-insensitive, defaulting to info. All output
// goes to stderr.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(cfg))
	slog.SetDefault(logger)
	return logger
}

func newHandler(cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(os.Stderr, opts)
	}

	opts.AddSource = true
	return slog.NewTextHandler(os.Stderr, opts)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
