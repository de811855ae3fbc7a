package graph

// walk performs the upward traversal from an entry fragment node, visiting
// every node reachable by following parent edges, scoring each visited node
// that carries items, and merging per-item
// results with the maximum rule (spec.md §4.2.3, ported from QSGraph's
// walk-and-collect pass over GraphNode.getParents()).
//
// Pulled out of Graph.WalkAndScore as its own function per the component
// split in spec.md §4.3: the traversal itself has no dependency on the
// graph's locking or storage, only on the node it starts from.
func walk[T comparable](queryFragment string, entry *node[T], scorer func(queryFragment, nodeFragment string) float64) map[T]float64 {
	best := make(map[T]float64)
	visited := make(map[*node[T]]struct{})

	var visit func(n *node[T])
	visit = func(n *node[T]) {
		if _, seen := visited[n]; seen {
			return
		}
		visited[n] = struct{}{}

		if n.items.Len() > 0 {
			score := scorer(queryFragment, n.fragment)
			if score > 0 {
				for _, item := range n.Items() {
					if prev, ok := best[item]; !ok || score > prev {
						best[item] = score
					}
				}
			}
		}

		for _, parent := range n.Parents() {
			visit(parent)
		}
	}

	visit(entry)
	return best
}
