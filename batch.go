package fragsearch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// BatchEntry pairs an item with its raw keyword string for use with
// AddItems.
type BatchEntry[T comparable] struct {
	Item     T
	Keywords string
}

// AddItems extracts keywords for every entry concurrently (extraction
// touches no shared state) and then normalizes, filters and registers each
// entry against the index sequentially, since registration itself must
// serialize on the graph's write lock anyway.
//
// Returns the number of entries that were actually added (i.e. survived
// keyword extraction with at least one usable keyword).
func (idx *Index[T]) AddItems(ctx context.Context, entries []BatchEntry[T]) (int, error) {
	prepared := make([]map[string]struct{}, len(entries))

	g, _ := errgroup.WithContext(ctx)
	for i, e := range entries {
		g.Go(func() error {
			prepared[i] = idx.opts.extractor.Extract(e.Keywords)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	added := 0
	for i, e := range entries {
		if idx.AddItemKeywordsContext(ctx, e.Item, prepared[i]) {
			added++
		}
	}

	return added, nil
}
