// Package logging provides the console's structured logger: a small
// interface over log/slog so components can be tested with a discarded or
// captured sink.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the logging interface handed to components.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// Format selects the handler output format.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// Config holds logger configuration.
type Config struct {
	Level   slog.Level
	Format  Format
	Output  io.Writer
	AddTime bool
}

type slogLogger struct {
	logger *slog.Logger
}

// NewLogger creates a logger with the given configuration.
func NewLogger(config Config) Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level: config.Level,
	}
	if !config.AddTime {
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		}
	}

	var handler slog.Handler
	switch config.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(config.Output, opts)
	default:
		handler = slog.NewTextHandler(config.Output, opts)
	}

	return &slogLogger{logger: slog.New(handler)}
}

// NewDefaultLogger creates a logger with sensible defaults for an
// interactive tool: info level, text format, no timestamps.
func NewDefaultLogger() Logger {
	return NewLogger(Config{Level: slog.LevelInfo})
}

// NewQuietLogger creates a logger that only shows errors.
func NewQuietLogger() Logger {
	return NewLogger(Config{Level: slog.LevelError})
}

// NewVerboseLogger creates a logger that also shows debug output.
func NewVerboseLogger() Logger {
	return NewLogger(Config{Level: slog.LevelDebug})
}

// NewDisabledLogger creates a logger that discards everything. Useful in
// tests.
func NewDisabledLogger() Logger {
	return NewLogger(Config{Level: slog.Level(1000), Output: io.Discard})
}

func (l *slogLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *slogLogger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *slogLogger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *slogLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}
