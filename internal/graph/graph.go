// Package graph implements the fragment graph: a shared multi-root DAG in
// which every contiguous substring of every registered keyword is a node,
// edges point from longer fragments up to their two length-minus-one
// children (prefix and suffix), and items are attached at keyword nodes.
//
// This is the core described in spec.md: register, deregister, walk and
// score, clear, stats. Everything here is grounded directly on
// com.zigurs.karlis.utils.search.graph.QSGraph (original_source), translated
// from Java's StampedLock + ImmutableSet to a Go sync.RWMutex guarding plain
// maps plus copy-on-write sets for per-node state.
package graph

import (
	"sync"
	"sync/atomic"

	"github.com/rawwwulea/QuickSearch/internal/intern"
)

// Graph owns the fragment store and item registry and coordinates every
// mutation under a single writer / many readers lock (spec.md §5).
type Graph[T comparable] struct {
	mu sync.RWMutex

	fragments map[string]*node[T]
	items     sync.Map // T -> *cowSet[string], lock-free reads (spec.md §9 open question, option b)

	interner   *intern.Interner
	shardCount int

	itemCount     atomic.Int64
	fragmentCount atomic.Int64
}

// New creates an empty Graph. shardCount configures the internal string
// interner; 0 selects a sensible default.
func New[T comparable](shardCount int) *Graph[T] {
	return &Graph[T]{
		fragments:  make(map[string]*node[T]),
		interner:   intern.New(shardCount),
		shardCount: shardCount,
	}
}

// Register atomically adds item as a member of each kw in keywords,
// generating any missing graph structure (spec.md §4.2.1).
//
// Duplicate keywords in the input are a no-op beyond set membership.
// Re-registering an existing item with overlapping keywords is idempotent
// for the keywords already present; the item registry entry is unioned
// with the newly supplied set.
func (g *Graph[T]) Register(item T, keywords map[string]struct{}) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for kw := range keywords {
		g.materialize(nil, kw, item, true)
	}

	g.unionItemKeywords(item, keywords)
}

// materialize is the recursive node-materialization procedure of spec.md
// §4.2.1. hasItem distinguishes "this call carries an item to attach" from
// the recursive calls that only wire up child structure.
func (g *Graph[T]) materialize(parent *node[T], identity string, item T, hasItem bool) *node[T] {
	canonical := g.interner.Intern(identity)

	n, ok := g.fragments[canonical]
	if !ok {
		n = newNode[T](canonical)
		g.fragments[canonical] = n
		g.fragmentCount.Add(1)

		if len(canonical) > 1 {
			var zero T
			g.materialize(n, canonical[:len(canonical)-1], zero, false)
			g.materialize(n, canonical[1:], zero, false)
		}
	}

	if hasItem {
		n.AddItem(item)
	}
	if parent != nil {
		n.AddParent(parent)
	}

	return n
}

func (g *Graph[T]) unionItemKeywords(item T, keywords map[string]struct{}) {
	next := newCowSet[string]()
	if v, ok := g.items.Load(item); ok {
		for _, kw := range v.(*cowSet[string]).Items() {
			next.Add(kw)
		}
	} else {
		g.itemCount.Add(1)
	}
	for kw := range keywords {
		next.Add(kw)
	}
	g.items.Store(item, next)
}

// Deregister atomically removes item from every node where it is currently
// attached and collapses any node that becomes unreferenced (spec.md
// §4.2.2). Deregistering an item that was never registered is a silent
// no-op.
func (g *Graph[T]) Deregister(item T) {
	g.mu.Lock()
	defer g.mu.Unlock()

	v, ok := g.items.Load(item)
	if !ok {
		return
	}
	kws := v.(*cowSet[string])

	for _, kw := range kws.Items() {
		n, ok := g.fragments[kw]
		if !ok {
			continue
		}
		n.RemoveItem(item)
		g.collapse(n, nil)
	}

	g.items.Delete(item)
	g.itemCount.Add(-1)
}

// collapse is the recursive edge-removal procedure of spec.md §4.2.2.
//
// Because child lookups go through the fragment store, and a node removes
// itself from the store before recursing, the recursion is naturally
// guarded: a child already collapsed by another branch yields a store miss
// (n == nil here) and that branch terminates.
func (g *Graph[T]) collapse(n *node[T], parent *node[T]) {
	if n == nil {
		return
	}

	if parent != nil {
		n.RemoveParent(parent)
	}

	if n.live() {
		return
	}

	delete(g.fragments, n.fragment)
	g.fragmentCount.Add(-1)
	g.interner.Forget(n.fragment)

	if len(n.fragment) > 1 {
		prefix := g.fragments[n.fragment[:len(n.fragment)-1]]
		suffix := g.fragments[n.fragment[1:]]
		g.collapse(prefix, n)
		g.collapse(suffix, n)
	}
}

// WalkAndScore locates the entry node for fragment and walks upward through
// parents, scoring every visited node that carries items and merging
// results per item using the maximum rule (spec.md §4.2.3).
func (g *Graph[T]) WalkAndScore(fragment string, scorer func(queryFragment, nodeFragment string) float64) map[T]float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	root, ok := g.fragments[fragment]
	if !ok {
		return map[T]float64{}
	}

	return walk(fragment, root, scorer)
}

// HasFragment reports whether fragment currently names a live node.
//
// Exposed for the façade's single-fragment backtracking (index.go), which
// needs to tell "no node for this fragment, try a shorter one" apart from
// "node exists but nothing scored above zero" — a distinction WalkAndScore's
// empty-map return alone can't make. The graph itself never backtracks
// (spec.md §4.2.3): that policy lives one layer up.
func (g *Graph[T]) HasFragment(fragment string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.fragments[fragment]
	return ok
}

// Clear empties both the fragment store and the item registry.
//
// The item registry is drained entry by entry rather than replaced with a
// fresh sync.Map: KeywordsOf reads g.items without taking mu, so swapping
// the field itself would race with a concurrent lock-free reader.
func (g *Graph[T]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.fragments = make(map[string]*node[T])
	g.items.Range(func(key, _ any) bool {
		g.items.Delete(key)
		return true
	})
	g.itemCount.Store(0)
	g.fragmentCount.Store(0)
	g.interner = intern.New(g.shardCount)
}

// Stats returns (number of registered items, number of live fragment
// nodes). Readable without locking; the two values need not be mutually
// consistent since this is an approximate, observational snapshot.
func (g *Graph[T]) Stats() (items int, fragments int) {
	return int(g.itemCount.Load()), int(g.fragmentCount.Load())
}

// KeywordsOf returns the keyword set associated with item across all of
// its registrations, or nil if item is not registered. Safe to call
// concurrently with mutators without taking the graph lock: the item
// registry stores an immutable snapshot per item (spec.md §9, resolving
// the "concurrent keywords_of safety" open question with option b).
func (g *Graph[T]) KeywordsOf(item T) []string {
	v, ok := g.items.Load(item)
	if !ok {
		return nil
	}
	return v.(*cowSet[string]).Items()
}
