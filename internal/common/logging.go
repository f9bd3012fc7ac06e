// Package common holds helpers shared by the CLI actions: URL handling and
// logger construction.
package common

import (
	"log/slog"
	"os"
)

// NewLogger builds the CLI logger: JSON to stderr, errors only when quiet.
func NewLogger(quiet bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if quiet {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}
