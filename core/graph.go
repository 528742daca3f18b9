// File: graph.go
// Role: Read-only queries over the caller-owned adjacency maps.
// Determinism:
//   - Neighbor and arc order is the caller's slice order.
//   - Dangling vertices are reported in first-seen order (key iteration is not ordered).

package core

import "fmt"

// HasVertex reports whether v is a key of g.
func (g Graph[V]) HasVertex(v V) bool {
	_, ok := g[v]
	return ok
}

// Order returns the number of keyed vertices.
func (g Graph[V]) Order() int { return len(g) }

// Size returns the number of edges, counting duplicates.
func (g Graph[V]) Size() int {
	n := 0
	for _, nbrs := range g {
		n += len(nbrs)
	}
	return n
}

// Neighbors returns the adjacency of v under the given policy.
// A dangling v yields nil under DanglingSink and ErrDanglingVertex otherwise.
func (g Graph[V]) Neighbors(v V, policy DanglingPolicy) ([]V, error) {
	nbrs, ok := g[v]
	if ok {
		return nbrs, nil
	}
	if policy == DanglingSink {
		return nil, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrDanglingVertex, v)
}

// Dangling returns every neighbor that is not a key of g, without duplicates.
func (g Graph[V]) Dangling() []V {
	var out []V
	seen := make(map[V]struct{})
	for _, nbrs := range g {
		for _, w := range nbrs {
			if _, ok := g[w]; ok {
				continue
			}
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	return out
}

// CheckDangling returns ErrDanglingVertex naming the first dangling vertex
// found when policy is DanglingStrict; otherwise it returns nil.
func (g Graph[V]) CheckDangling(policy DanglingPolicy) error {
	if policy != DanglingStrict {
		return nil
	}
	if d := g.Dangling(); len(d) > 0 {
		return fmt.Errorf("%w: %v", ErrDanglingVertex, d[0])
	}
	return nil
}

// HasVertex reports whether v is a key of g.
func (g WeightedGraph[V]) HasVertex(v V) bool {
	_, ok := g[v]
	return ok
}

// Order returns the number of keyed vertices.
func (g WeightedGraph[V]) Order() int { return len(g) }

// Size returns the number of arcs, counting duplicates.
func (g WeightedGraph[V]) Size() int {
	n := 0
	for _, arcs := range g {
		n += len(arcs)
	}
	return n
}

// Arcs returns the outgoing arcs of v under the given policy.
func (g WeightedGraph[V]) Arcs(v V, policy DanglingPolicy) ([]Arc[V], error) {
	arcs, ok := g[v]
	if ok {
		return arcs, nil
	}
	if policy == DanglingSink {
		return nil, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrDanglingVertex, v)
}

// Dangling returns every arc head that is not a key of g, without duplicates.
func (g WeightedGraph[V]) Dangling() []V {
	var out []V
	seen := make(map[V]struct{})
	for _, arcs := range g {
		for _, a := range arcs {
			if _, ok := g[a.To]; ok {
				continue
			}
			if _, dup := seen[a.To]; dup {
				continue
			}
			seen[a.To] = struct{}{}
			out = append(out, a.To)
		}
	}
	return out
}

// CheckDangling mirrors Graph.CheckDangling.
func (g WeightedGraph[V]) CheckDangling(policy DanglingPolicy) error {
	if policy != DanglingStrict {
		return nil
	}
	if d := g.Dangling(); len(d) > 0 {
		return fmt.Errorf("%w: %v", ErrDanglingVertex, d[0])
	}
	return nil
}
