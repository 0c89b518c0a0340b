// Package logger builds the application's *slog.Logger.
package logger

import (
	"io"
	"log/slog"
)

// New returns a logger configured for the given environment.
//
// Development (dev and anything unrecognised): human-readable text at
// DEBUG. Staging: JSON at DEBUG. Production: JSON at INFO, which is what
// log aggregators expect to ingest.
func New(env string, w io.Writer) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	case "staging":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
}

// Discard returns a logger that drops everything. Useful as a default
// when a component is constructed without one.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
