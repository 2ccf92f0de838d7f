package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/phsym/console-slog"
)

func getLogLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelError
	}
}

func createLogger(logLevel string) *slog.Logger {
	return slog.New(
		console.NewHandler(os.Stderr, &console.HandlerOptions{Level: getLogLevel(logLevel)}),
	)
}
