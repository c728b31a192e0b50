package debugger

import (
	"context"
	"fmt"
	"log/slog"
)

// Logger is an optional interface for observability of session operations.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: logging must be best-effort; Logf should not panic.
// - Ownership: format/args are read-only.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...any)
}

// SlogLogger adapts a *slog.Logger to Logger. Messages are logged at the
// given level.
type SlogLogger struct {
	Logger *slog.Logger
	Level  slog.Level
}

// NewSlogLogger returns a Logger writing debug-level records to l.
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{Logger: l, Level: slog.LevelDebug}
}

// Logf formats the message and logs it. A nil receiver or logger drops it.
func (s *SlogLogger) Logf(format string, args ...any) {
	if s == nil || s.Logger == nil {
		return
	}
	s.Logger.Log(context.Background(), s.Level, fmt.Sprintf(format, args...))
}
