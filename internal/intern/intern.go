// Package intern provides a sharded string interning table.
//
// Go strings are not interned by the runtime the way Java strings are, so
// fragment identity ("two live nodes never share the same fragment", spec
// invariant I2) has to be enforced explicitly: every fragment string that
// flows into the graph passes through an Interner first, guaranteeing that
// equal substrings observed on different registration calls end up backed
// by the same allocation.
//
// The table is sharded by hash so that the extremely high call volume of
// node materialization (every substring of every registered keyword, i.e.
// O(len(keyword)^2) calls per Register) doesn't serialize on a single lock.
package intern

import (
	"sync"

	farmhash "github.com/leemcloughlin/gofarmhash"
)

const defaultShardCount = 64

// Interner deduplicates fragment strings across the lifetime of a graph.
type Interner struct {
	shards []shard
	seed   uint32
}

type shard struct {
	mu sync.RWMutex
	m  map[string]string
}

// New creates an Interner with the given number of shards.
// A shardCount <= 0 selects a sensible default.
func New(shardCount int) *Interner {
	if shardCount <= 0 {
		shardCount = defaultShardCount
	}

	shards := make([]shard, shardCount)
	for i := range shards {
		shards[i].m = make(map[string]string)
	}

	return &Interner{shards: shards}
}

// Intern returns the canonical shared copy of s, registering s as that
// canonical copy the first time it is seen.
func (in *Interner) Intern(s string) string {
	sh := in.shardFor(s)

	sh.mu.RLock()
	if canonical, ok := sh.m[s]; ok {
		sh.mu.RUnlock()
		return canonical
	}
	sh.mu.RUnlock()

	sh.mu.Lock()
	defer sh.mu.Unlock()

	if canonical, ok := sh.m[s]; ok {
		return canonical
	}
	sh.m[s] = s
	return s
}

// Len returns the number of distinct strings currently interned.
// Approximate under concurrent mutation, like the graph's own Stats.
func (in *Interner) Len() int {
	n := 0
	for i := range in.shards {
		sh := &in.shards[i]
		sh.mu.RLock()
		n += len(sh.m)
		sh.mu.RUnlock()
	}
	return n
}

// Forget removes s from the table. The graph engine calls this when the
// last node for a fragment collapses, so the interner doesn't outlive every
// node that ever referenced a given fragment by more than one generation.
func (in *Interner) Forget(s string) {
	sh := in.shardFor(s)
	sh.mu.Lock()
	delete(sh.m, s)
	sh.mu.Unlock()
}

func (in *Interner) shardFor(s string) *shard {
	h := farmhash.Hash32WithSeed([]byte(s), in.seed)
	return &in.shards[h%uint32(len(in.shards))]
}
