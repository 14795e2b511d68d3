package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// setupLogger - Returns a logger writing to stderr at level in format, and makes it the default
func setupLogger(level, format string) (logger *slog.Logger, err error) {
	var hopts slog.HandlerOptions

	switch strings.ToLower(level) {
	case "error":
		hopts.Level = slog.LevelError
	case "warn", "warning":
		hopts.Level = slog.LevelWarn
	case "info", "":
		hopts.Level = slog.LevelInfo
	case "debug":
		hopts.Level = slog.LevelDebug
	default:
		err = fmt.Errorf("unknown log level: %s", level)
		return
	}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "text", "":
		handler = slog.NewTextHandler(os.Stderr, &hopts)
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, &hopts)
	default:
		err = fmt.Errorf("unknown log format: %s", format)
		return
	}

	logger = slog.New(handler)
	slog.SetDefault(logger)

	return
}
