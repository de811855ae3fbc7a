// Package fragsearch provides an embeddable, in-memory, incremental
// "quick search" index: a type-free lookup from partial keyword strings to
// the items they have been registered against, tuned for interactive
// typeahead scenarios over small to medium datasets.
//
// Internally every registered keyword is decomposed into the fragment
// graph (internal/graph), a shared multi-root DAG over substrings, so that
// a query fragment as short as two characters can reach every keyword
// containing it without a linear scan.
//
// # Quick Start
//
//	idx := fragsearch.New[string]()
//	idx.AddItem("villain", "Roy Batty Lord Voldemort Colonel Kurtz")
//	idx.AddItem("hero", "Walt Kowalski Jake Blues Shaun")
//	item, ok := idx.Find("walk")
//	// item == "hero", ok == true
//
// # Matching Multiple Keywords
//
// A multi-word search string such as "new york pizza" is split into
// fragments and every item must match all of them (AND semantics); an
// item's score is the one it was assigned on the first fragment that
// matched it, not a sum across fragments:
//
//	idx.AddItem(1, "New York Pizza Co")
//	idx.AddItem(2, "New York Bagels")
//	idx.FindItems("new york pizza", 10) // -> [1]
//
// # Observability
//
// Index accepts WithLogger and WithMetricsCollector options for
// structured logging (log/slog) and pluggable metrics collection; see
// metrics/prometheus for a Prometheus-backed collector.
//
// Concurrency - Index is safe for concurrent use. Reads and writes may
// overlap freely; a Find started before a concurrent AddItem/RemoveItem
// observes either the old or the new state of any given item, never a
// partially applied one.
package fragsearch
