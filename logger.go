package pinnedqueue

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with pinnedqueue-specific context.
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

// WithQueue adds a queue name field, useful when several queues share a handler.
func (l *Logger) WithQueue(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("queue", name),
	}
}

// LogBlockAllocated logs the allocation of a new tail block.
func (l *Logger) LogBlockAllocated(ctx context.Context, level, capacity, blocks int) {
	l.DebugContext(ctx, "block allocated",
		"level", level,
		"capacity", capacity,
		"blocks", blocks,
	)
}

// LogBlockRetired logs the release of a drained block.
func (l *Logger) LogBlockRetired(ctx context.Context, level, capacity, blocks int) {
	l.DebugContext(ctx, "block retired",
		"level", level,
		"capacity", capacity,
		"blocks", blocks,
	)
}

// LogMemoryRefused logs a block allocation refused by the memory budget.
func (l *Logger) LogMemoryRefused(ctx context.Context, level int, bytes int64, err error) {
	l.WarnContext(ctx, "block allocation refused",
		"level", level,
		"bytes", bytes,
		"error", err,
	)
}

// LogReset logs a reset of the queue.
func (l *Logger) LogReset(ctx context.Context, released, blocks int) {
	l.DebugContext(ctx, "queue reset",
		"released", released,
		"blocks", blocks,
	)
}
