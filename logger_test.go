package fragsearch

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLogRegisterWritesStructuredOutput(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.LogRegister(context.Background(), 3, true)

	out := buf.String()
	assert.Contains(t, out, "item registered")
	assert.Contains(t, out, "keyword_count=3")
	assert.Contains(t, out, "added=true")
}

func TestNoopLoggerDiscardsOutput(t *testing.T) {
	l := NoopLogger()
	l.LogRegister(context.Background(), 3, true)
	l.LogClear(context.Background(), 1, 2)
	// No assertion possible on stderr output; this just confirms no panic.
}

func TestIndexUsesConfiguredLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	idx := New[string](WithLogger(logger))
	idx.AddItem("hero", "Walt Kowalski")

	assert.Contains(t, buf.String(), "item registered")
}
