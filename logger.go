package splinego

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with splinego-specific field helpers.
// Evaluation hot paths never log; only construction, refinement and
// persistence do, and only through this type.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. A nil handler falls
// back to a text handler on stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger with human-readable output at the given
// level.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))}
}

// NewJSONLogger creates a Logger with JSON output at the given level.
func NewJSONLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))}
}

// NoopLogger creates a Logger that discards all output. It is the
// default.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	}))}
}

// WithShape tags the logger with a spline's dimensions.
func (l *Logger) WithShape(parDim, geoDim int) *Logger {
	return &Logger{Logger: l.Logger.With("parDim", parDim, "geoDim", geoDim)}
}

// WithModel tags the logger with a persisted model name.
func (l *Logger) WithModel(name string) *Logger {
	return &Logger{Logger: l.Logger.With("model", name)}
}
