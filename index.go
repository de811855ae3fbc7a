package fragsearch

import (
	"context"
	"sort"
	"time"

	"github.com/rawwwulea/QuickSearch/internal/graph"
)

// Index is a concurrency-safe, type-free quick search index over items of
// type T.
type Index[T comparable] struct {
	g    *graph.Graph[T]
	opts options
}

// New creates an empty Index using the given options. With no options,
// uses DefaultExtractor, DefaultNormalizer, RatioScorer and a minimum
// keyword length of 2, matching the defaults of the system this package
// reimplements.
func New[T comparable](optFns ...Option) *Index[T] {
	o := applyOptions(optFns)
	return &Index[T]{
		g:    graph.New[T](o.internShards),
		opts: o,
	}
}

// AddItem extracts keywords from the raw input string, normalizes and
// filters them, and registers item against the surviving set.
//
// Calling AddItem again for an item already present unions the new
// keywords with the ones already associated with it; it never removes
// existing associations. Returns false (without registering anything) if
// no usable keyword survived extraction and filtering.
func (idx *Index[T]) AddItem(item T, rawKeywords string) bool {
	return idx.AddItemKeywords(item, idx.opts.extractor.Extract(rawKeywords))
}

// AddItemKeywords registers item against the supplied raw keyword set,
// applying normalization and the minimum-length filter the same way
// AddItem does. Useful when the caller already has a discrete keyword
// list rather than a free-form string.
func (idx *Index[T]) AddItemKeywords(item T, rawKeywords map[string]struct{}) bool {
	return idx.addItemImpl(context.Background(), item, rawKeywords)
}

// AddItemKeywordsContext is AddItemKeywords with an attached context,
// threaded through to the configured Logger for request-scoped tracing.
func (idx *Index[T]) AddItemKeywordsContext(ctx context.Context, item T, rawKeywords map[string]struct{}) bool {
	return idx.addItemImpl(ctx, item, rawKeywords)
}

func (idx *Index[T]) addItemImpl(ctx context.Context, item T, rawKeywords map[string]struct{}) bool {
	start := time.Now()

	keywords := idx.prepareKeywords(rawKeywords, true)
	added := len(keywords) > 0
	if added {
		idx.g.Register(item, keywords)
	}

	idx.opts.logger.LogRegister(ctx, len(keywords), added)
	idx.opts.metricsCollector.RecordRegister(time.Since(start), len(keywords))

	return added
}

// RemoveItem removes item and all of its keyword associations from the
// index. Returns false if item was not registered.
func (idx *Index[T]) RemoveItem(item T) bool {
	return idx.RemoveItemContext(context.Background(), item)
}

// RemoveItemContext is RemoveItem with an attached context.
func (idx *Index[T]) RemoveItemContext(ctx context.Context, item T) bool {
	start := time.Now()

	removed := idx.g.KeywordsOf(item) != nil
	idx.g.Deregister(item)

	idx.opts.logger.LogDeregister(ctx, removed)
	idx.opts.metricsCollector.RecordDeregister(time.Since(start), removed)

	return removed
}

// Find returns the single top-scoring item for searchString, or the zero
// value and false if no item matches.
func (idx *Index[T]) Find(searchString string) (T, bool) {
	items := idx.FindItems(searchString, 1)
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[0], true
}

// FindItems returns up to numberOfTopItems items ranked by descending
// score against searchString. Returns an empty (not nil) slice if
// searchString extracts no usable keywords or numberOfTopItems < 1.
func (idx *Index[T]) FindItems(searchString string, numberOfTopItems int) []T {
	resp := idx.FindAugmented(searchString, numberOfTopItems)
	out := make([]T, len(resp.Items))
	for i, it := range resp.Items {
		out[i] = it.Item
	}
	return out
}

// ResponseItem is a single scored match returned by FindAugmented, paired
// with the full keyword set it was registered under so callers can surface
// which association drove the match.
type ResponseItem[T comparable] struct {
	Item         T
	ItemKeywords []string
	Score        float64
}

// Response is the augmented result of a FindAugmented call: the processed
// search keywords alongside the ranked matches.
type Response[T comparable] struct {
	SearchString         string
	SearchStringKeywords []string
	Items                []ResponseItem[T]
}

// IntersectingKeywords returns the keywords common to every item in the
// response, useful as a hint to the user about what narrowed the result
// set. Returns nil if the response has no items.
func (r Response[T]) IntersectingKeywords() []string {
	if len(r.Items) == 0 {
		return nil
	}

	common := make(map[string]struct{})
	for _, kw := range r.Items[0].ItemKeywords {
		common[kw] = struct{}{}
	}

	for _, it := range r.Items[1:] {
		present := make(map[string]struct{}, len(it.ItemKeywords))
		for _, kw := range it.ItemKeywords {
			present[kw] = struct{}{}
		}
		for kw := range common {
			if _, ok := present[kw]; !ok {
				delete(common, kw)
			}
		}
	}

	out := make([]string, 0, len(common))
	for kw := range common {
		out = append(out, kw)
	}
	return out
}

// FindAugmented is Find/FindItems with full result metadata: the
// normalized search keywords actually used, and per-item scores and
// keyword sets.
func (idx *Index[T]) FindAugmented(searchString string, numberOfTopItems int) Response[T] {
	return idx.findAugmentedImpl(context.Background(), searchString, numberOfTopItems)
}

// FindAugmentedContext is FindAugmented with an attached context.
func (idx *Index[T]) FindAugmentedContext(ctx context.Context, searchString string, numberOfTopItems int) Response[T] {
	return idx.findAugmentedImpl(ctx, searchString, numberOfTopItems)
}

func (idx *Index[T]) findAugmentedImpl(ctx context.Context, searchString string, numberOfTopItems int) Response[T] {
	start := time.Now()

	rawKeywords := idx.opts.extractor.Extract(searchString)
	searchKeywords := idx.prepareKeywords(rawKeywords, false)

	searchKeywordsList := make([]string, 0, len(searchKeywords))
	for kw := range searchKeywords {
		searchKeywordsList = append(searchKeywordsList, kw)
	}
	sort.Strings(searchKeywordsList)

	resp := Response[T]{
		SearchString:         searchString,
		SearchStringKeywords: searchKeywordsList,
	}

	if len(searchKeywords) == 0 || numberOfTopItems < 1 {
		idx.opts.logger.LogFind(ctx, searchString, len(searchKeywords), 0)
		idx.opts.metricsCollector.RecordFind(time.Since(start), len(searchKeywords), 0)
		return resp
	}

	scored := idx.findAndScore(searchKeywords)

	items := make([]ResponseItem[T], 0, len(scored))
	for item, score := range scored {
		items = append(items, ResponseItem[T]{
			Item:         item,
			ItemKeywords: idx.g.KeywordsOf(item),
			Score:        score,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})
	if len(items) > numberOfTopItems {
		items = items[:numberOfTopItems]
	}

	resp.Items = items

	idx.opts.logger.LogFind(ctx, searchString, len(searchKeywords), len(resp.Items))
	idx.opts.metricsCollector.RecordFind(time.Since(start), len(searchKeywords), len(resp.Items))

	return resp
}

// findAndScore implements multi-keyword AND matching: each supplied
// fragment contributes a map of matching items (scored by walking the
// fragment graph), and the running result is intersected fragment by
// fragment so only items matching every supplied fragment survive.
//
// Ported from findAndScoreImpl: the score an item carries forward is the
// one it was assigned on first occurrence (the first fragment that matched
// it); later fragments only filter the candidate set down, they never add
// to the kept score.
func (idx *Index[T]) findAndScore(fragments map[string]struct{}) map[T]float64 {
	var result map[T]float64

	for fragment := range fragments {
		matches := idx.matchSingleFragment(fragment)

		if result == nil {
			result = matches
			continue
		}

		next := make(map[T]float64, len(result))
		for item, score := range result {
			if _, ok := matches[item]; ok {
				next[item] = score
			}
		}
		result = next
	}

	if result == nil {
		return map[T]float64{}
	}
	return result
}

// matchSingleFragment walks fragment through the graph, and if fragment
// names no live node at all, retries with the fragment shortened by one
// trailing character, repeating until a node is found or the fragment is
// down to a single character.
//
// Ported from matchSingleFragment: this is how a query like "termite"
// still reaches an item registered under "terminator" after two
// backtracking iterations. Deliberately not pushed into internal/graph —
// the graph core stays exact, no-backtrack lookup (spec.md §4.2.3); the
// retry policy belongs to the façade that owns the scoring contract.
func (idx *Index[T]) matchSingleFragment(fragment string) map[T]float64 {
	for !idx.g.HasFragment(fragment) {
		if len(fragment) <= 1 {
			return map[T]float64{}
		}
		fragment = fragment[:len(fragment)-1]
	}

	return idx.g.WalkAndScore(fragment, func(query, node string) float64 {
		return idx.opts.scorer.Score(query, node)
	})
}

// Clear removes every item and fragment from the index.
func (idx *Index[T]) Clear() {
	idx.ClearContext(context.Background())
}

// ClearContext is Clear with an attached context.
func (idx *Index[T]) ClearContext(ctx context.Context) {
	items, fragments := idx.g.Stats()
	idx.g.Clear()
	idx.opts.logger.LogClear(ctx, items, fragments)
}

// Stats reports the current size of the index.
type Stats struct {
	Items     int
	Fragments int
}

// Stats returns the current item and fragment node counts.
func (idx *Index[T]) Stats() Stats {
	items, fragments := idx.g.Stats()
	return Stats{Items: items, Fragments: fragments}
}

// KeywordsOf returns the keyword set item is currently registered under,
// or nil if item is not registered.
func (idx *Index[T]) KeywordsOf(item T) []string {
	return idx.g.KeywordsOf(item)
}

// prepareKeywords normalizes raw keywords and, if filterShort is true,
// drops any that fall below the configured minimum keyword length.
func (idx *Index[T]) prepareKeywords(raw map[string]struct{}, filterShort bool) map[string]struct{} {
	out := make(map[string]struct{}, len(raw))
	for kw := range raw {
		if kw == "" {
			continue
		}
		n := idx.opts.normalizer.Normalize(kw)
		if n == "" {
			continue
		}
		if filterShort && len(n) < idx.opts.minKeywordLength {
			continue
		}
		out[n] = struct{}{}
	}
	return out
}
