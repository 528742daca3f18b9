// File: view.go
// Role: Non-mutating conversions between the weighted and unweighted shapes.
// Determinism:
//   - Key set and per-vertex neighbor order are preserved.

package core

// UnweightedView returns a Graph with the same keys and arc order as g,
// dropping every weight. g is not mutated.
//
// Complexity: O(V + E).
func UnweightedView[V comparable](g WeightedGraph[V]) Graph[V] {
	if g == nil {
		return nil
	}
	out := make(Graph[V], len(g))
	for v, arcs := range g {
		nbrs := make([]V, len(arcs))
		for i, a := range arcs {
			nbrs[i] = a.To
		}
		out[v] = nbrs
	}
	return out
}

// UnitWeightView returns a WeightedGraph in which every edge of g weighs 1.
// Lexicographic search over it yields (hops, hops) for every reachable vertex.
//
// Complexity: O(V + E).
func UnitWeightView[V comparable](g Graph[V]) WeightedGraph[V] {
	if g == nil {
		return nil
	}
	out := make(WeightedGraph[V], len(g))
	for v, nbrs := range g {
		arcs := make([]Arc[V], len(nbrs))
		for i, w := range nbrs {
			arcs[i] = Arc[V]{To: w, Weight: 1}
		}
		out[v] = arcs
	}
	return out
}
