package fragsearch

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimited wraps an Index with a token-bucket limit on search calls,
// suited to interactive typeahead callers that would otherwise re-query on
// every keystroke faster than the index (or a downstream UI) can usefully
// render results.
type RateLimited[T comparable] struct {
	idx     *Index[T]
	limiter *rate.Limiter
}

// NewRateLimited wraps idx with a limiter allowing up to burst immediate
// queries and sustaining qps queries per second thereafter.
func NewRateLimited[T comparable](idx *Index[T], qps float64, burst int) *RateLimited[T] {
	return &RateLimited[T]{
		idx:     idx,
		limiter: rate.NewLimiter(rate.Limit(qps), burst),
	}
}

// Find blocks until the rate limiter admits the call (or ctx is done) and
// then delegates to Index.Find.
func (rl *RateLimited[T]) Find(ctx context.Context, searchString string) (T, bool, error) {
	if err := rl.limiter.Wait(ctx); err != nil {
		var zero T
		return zero, false, err
	}
	item, ok := rl.idx.Find(searchString)
	return item, ok, nil
}

// FindItems blocks until the rate limiter admits the call (or ctx is done)
// and then delegates to Index.FindItems.
func (rl *RateLimited[T]) FindItems(ctx context.Context, searchString string, numberOfTopItems int) ([]T, error) {
	if err := rl.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return rl.idx.FindItems(searchString, numberOfTopItems), nil
}

// TryFindItems is the non-blocking variant: it returns immediately with
// ok == false if the limiter has no token available right now, instead of
// waiting for one.
func (rl *RateLimited[T]) TryFindItems(searchString string, numberOfTopItems int) (items []T, ok bool) {
	if !rl.limiter.Allow() {
		return nil, false
	}
	return rl.idx.FindItems(searchString, numberOfTopItems), true
}

// Index returns the underlying, unthrottled Index. Mutations (AddItem,
// RemoveItem) are intentionally not rate limited; only search calls are.
func (rl *RateLimited[T]) Index() *Index[T] {
	return rl.idx
}
