// Package logger builds the application-wide structured logger.
package logger

import (
	"log/slog"
	"os"
)

// New returns a slog text logger writing to stdout.  The dev environment
// logs at debug level so rejected requests are visible during manual
// testing; everything else logs at info.
func New(env string) *slog.Logger {
	level := slog.LevelInfo
	if env == "dev" {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}
