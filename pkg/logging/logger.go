// Package logging adapts log/slog to the core.Logger contract; the CLI
// logs render progress and errors through it.
package logging

import (
	"fmt"
	"log/slog"
	"os"
)

// SlogLogger implements core.Logger on top of a structured slog.Logger.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger builds a logger writing to os.Stderr at the given level
// ("debug", "info", "warn", or "error"; unrecognized values fall back to
// "info").
func NewSlogLogger(level string) *SlogLogger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(level)})
	return &SlogLogger{logger: slog.New(handler)}
}

// Printf satisfies core.Logger, formatting the message and logging it at
// info level.
func (l *SlogLogger) Printf(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func parseLevel(level string) slog.Level {
	switch level {
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
