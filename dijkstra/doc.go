// Package dijkstra provides a lexicographic shortest-path search on weighted
// graphs with non-negative arc weights.
//
// Overview:
//
//   - Dijkstra computes, for every vertex, the pair (minimum total weight,
//     fewest edges among minimum-weight paths) from a single source.
//   - The priority queue is keyed by the pair itself, compared lexicographically,
//     so equally light paths are resolved in favor of fewer hops.
//   - Vertices the source cannot reach are reported as (core.Infinity, 0).
//
// When to use:
//
//   - Routing where cost matters first and hop count breaks ties (fewer transfers,
//     fewer relays, fewer intermediate services).
//   - Any place a plain Dijkstra would do, when deterministic tie-breaking matters.
//
// Key features:
//
//   - Generic over any comparable vertex type; graphs are plain map literals.
//   - ReturnPath: returns the predecessor map of the lexicographic tree, which
//     core.PathTo turns into vertex sequences.
//   - MaxWeight: aborts exploration beyond a weight budget.
//   - InfEdgeThreshold: treats any arc with weight ≥ threshold as impassable.
//   - DanglingPolicy: strict (fail before any work) or sink (no outgoing edges),
//     shared with package bfs.
//   - Context cancellation, slog debug logging, OpenTelemetry spans and metrics.
//
// Stale entries:
//
//	Improved costs are pushed as new heap entries instead of updating old ones.
//	An entry popped with a cost worse than the vertex's current record is stale,
//	not a bug, and is skipped.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log E): every improvement pushes one heap entry.
//   - Space: O(V + E).
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        the graph is nil.
//   - ErrOptionViolation: an option got an invalid value (negative MaxWeight,
//     non-positive InfEdgeThreshold, unknown dangling policy).
//   - ErrVertexNotFound:  the source is not a key of the graph.
//   - ErrNegativeWeight:  some arc weighs less than zero (detected by an O(E) pre-scan).
//   - core.ErrDanglingVertex: an arc points at a non-key vertex under DanglingStrict.
//
// API reference:
//
//	func Dijkstra[V comparable](
//	    g core.WeightedGraph[V],
//	    source V,
//	    opts ...Option,
//	) (cost map[V]core.Cost, prev core.Parents[V], err error)
//
// Example:
//
//	g := core.WeightedGraph[string]{
//	    "s": {{To: "a", Weight: 1}, {To: "c", Weight: 4}},
//	    "a": {{To: "b", Weight: 2}},
//	    "b": {{To: "c", Weight: 1}, {To: "d", Weight: 4}},
//	    "c": {{To: "d", Weight: 3}},
//	    "d": nil,
//	}
//	cost, _, err := dijkstra.Dijkstra(g, "s")
//	// cost["c"] == core.Cost{Weight: 4, Edges: 1}: s→c beats s→a→b→c on hops.
//
// Thread safety:
//
//   - Each call allocates its own state; concurrent calls on the same graph are
//     safe as long as the graph is not mutated meanwhile.
package dijkstra
