package idtracker

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with tracker-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithID adds an id field to the logger.
func (l *Logger) WithID(id ID) *Logger {
	return &Logger{
		Logger: l.Logger.With("id", id),
	}
}

// WithBlock adds a block index field to the logger.
func (l *Logger) WithBlock(index uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("block", index),
	}
}

// LogBlockAllocated logs the allocation of a new block.
func (l *Logger) LogBlockAllocated(index uint64, blocks int) {
	l.Debug("block allocated",
		"block", index,
		"blocks", blocks,
	)
}

// LogBlockReleased logs the release of an exhausted block.
func (l *Logger) LogBlockReleased(index uint64, blocks int) {
	l.Debug("block released",
		"block", index,
		"blocks", blocks,
	)
}

// LogOrderViolation logs a pop that did not advance past the previous one.
func (l *Logger) LogOrderViolation(err *OrderViolationError) {
	l.Error("pop order violated",
		"previous", err.Previous,
		"got", err.Got,
		"error", err,
	)
}
