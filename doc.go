// Package lexpath collects small, caller-owned graph searches: a
// lexicographic Dijkstra that ranks paths by (total weight, edge count),
// and a breadth-first search that records a parent tree for route
// reconstruction.
//
// Graphs are plain maps owned by the caller; nothing here mutates them.
//
//	core/       - Graph / WeightedGraph shapes, Cost, parent trees, PathTo
//	dijkstra/   - shortest-shortest path: minimum weight, then fewest edges
//	bfs/        - breadth-first order, depths and parents
//	cmd/lexpath - command-line front end for all three
//
// Quick example:
//
//	    s ──1── a ──2── b
//	    │               │
//	    4               1
//	    └────── c ──────┘
//
//	g := core.WeightedGraph[string]{
//		"s": {{To: "a", Weight: 1}, {To: "c", Weight: 4}},
//		"a": {{To: "b", Weight: 2}},
//		"b": {{To: "c", Weight: 1}},
//		"c": nil,
//	}
//	cost, _, _ := dijkstra.Dijkstra(g, "s")
//	// cost["c"] == core.Cost{Weight: 4, Edges: 1}: both routes weigh 4,
//	// the direct arc wins on edge count.
//
// Searches are safe to run concurrently on the same graph as long as no
// caller writes to it meanwhile. Each call may be traced and measured
// through OpenTelemetry and logs a debug summary through log/slog.
package lexpath
