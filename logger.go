package fragsearch

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with fragsearch-specific context, providing
// structured logging with consistent field names across operations.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. A nil handler selects
// a text handler writing to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs at the
// given minimum level.
func NewJSONLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))}
}

// NewTextLogger creates a Logger that outputs human-readable text logs at
// the given minimum level.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.Level(1000)}))}
}

// WithItemCount adds an item count field to the logger.
func (l *Logger) WithItemCount(count int) *Logger {
	return &Logger{Logger: l.Logger.With("item_count", count)}
}

// LogRegister logs an item registration.
func (l *Logger) LogRegister(ctx context.Context, keywordCount int, added bool) {
	l.DebugContext(ctx, "item registered",
		"keyword_count", keywordCount,
		"added", added,
	)
}

// LogDeregister logs an item removal.
func (l *Logger) LogDeregister(ctx context.Context, removed bool) {
	l.DebugContext(ctx, "item deregistered",
		"removed", removed,
	)
}

// LogFind logs a search operation.
func (l *Logger) LogFind(ctx context.Context, searchString string, keywordCount, resultsFound int) {
	l.DebugContext(ctx, "search completed",
		"search_string", searchString,
		"keyword_count", keywordCount,
		"results", resultsFound,
	)
}

// LogClear logs a clear operation.
func (l *Logger) LogClear(ctx context.Context, itemsCleared, fragmentsCleared int) {
	l.InfoContext(ctx, "index cleared",
		"items_cleared", itemsCleared,
		"fragments_cleared", fragmentsCleared,
	)
}
