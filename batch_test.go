package fragsearch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemsRegistersAllUsableEntries(t *testing.T) {
	idx := New[string]()

	added, err := idx.AddItems(context.Background(), []BatchEntry[string]{
		{Item: "hero", Keywords: "Walt Kowalski"},
		{Item: "villain", Keywords: "Roy Batty"},
		{Item: "unusable", Keywords: "a"}, // below default min keyword length
	})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	_, ok := idx.Find("walt")
	assert.True(t, ok)
	_, ok = idx.Find("batty")
	assert.True(t, ok)

	stats := idx.Stats()
	assert.Equal(t, 2, stats.Items)
}

func TestAddItemsEmptyInput(t *testing.T) {
	idx := New[string]()
	added, err := idx.AddItems(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, added)
}
