package fragsearch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitedFindDelegatesToIndex(t *testing.T) {
	idx := New[string]()
	idx.AddItem("hero", "Walt Kowalski")

	rl := NewRateLimited(idx, 100, 10)

	item, ok, err := rl.Find(context.Background(), "walt")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "hero", item)
}

func TestRateLimitedTryFindItemsRespectsBurst(t *testing.T) {
	idx := New[string]()
	idx.AddItem("hero", "Walt Kowalski")

	rl := NewRateLimited(idx, 0, 1)

	_, ok := rl.TryFindItems("walt", 10)
	assert.True(t, ok)

	// Burst of 1 and qps 0 means the single token is not replenished.
	_, ok = rl.TryFindItems("walt", 10)
	assert.False(t, ok)
}

func TestRateLimitedIndexReturnsUnderlying(t *testing.T) {
	idx := New[string]()
	rl := NewRateLimited(idx, 10, 10)
	assert.Same(t, idx, rl.Index())
}
