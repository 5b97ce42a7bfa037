package goconv

import "log/slog"

// Logger receives the last diagnostic of OrThrow before it panics.
type Logger interface {
	Error(message string)
}

// LoggerFunc adapts a plain function to Logger.
type LoggerFunc func(message string)

func (f LoggerFunc) Error(message string) { f(message) }

// SlogLogger adapts a *slog.Logger. A nil logger uses slog.Default().
func SlogLogger(l *slog.Logger) Logger {
	if l == nil {
		l = slog.Default()
	}
	return slogLogger{l: l}
}

type slogLogger struct{ l *slog.Logger }

func (s slogLogger) Error(message string) {
	s.l.Error("conversion failed", slog.String("reason", message))
}

// NopLogger discards every message.
var NopLogger Logger = LoggerFunc(func(string) {})
