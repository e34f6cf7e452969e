// Package logging configures the process-wide slog logger. The accounting
// core never logs; only the boundary layers emit diagnostics.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup installs a text handler on stderr with the level taken from the
// given environment variable (debug, info, warn, error; warn by default so
// normal CLI runs stay quiet).
func Setup(envVar string) {
	level := slog.LevelWarn
	switch strings.ToLower(os.Getenv(envVar)) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning", "":
		// keep default
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
