// Package logger builds the process-wide structured logger. Debug level is
// opt-in because the simulated confirmation codes are logged there.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New returns a JSON slog logger tagged with the service name. LOG_LEVEL=debug
// lowers the level; anything else stays at info.
func New() *slog.Logger {
	level := slog.LevelInfo
	if strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug") {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("service", "udyam-portal")
}
