package logger

import (
	"log/slog"
	"os"
)

// New returns the application logger. JSON output keeps log aggregation
// simple in production; tests pass their own handlers.
func New() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
