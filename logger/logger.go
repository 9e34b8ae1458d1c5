package logger

import (
	"log/slog"
	"os"
)

// Init initializes the default logger with appropriate handler based on environment
func Init(env string, debug bool) {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if debug || env == "development" {
		opts.Level = slog.LevelDebug
		// Use text handler for development (human-readable)
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		// Use JSON handler for production (structured logging)
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
