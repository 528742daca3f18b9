// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order:  visit sequence
//   - Depth:  map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//     (the start carries core.NoParent)
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a vertex is discovered)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Build the parent tree that core.PathTo turns into hop-minimal routes.
//
// Determinism
//
//	Neighbors are enqueued in the order of the graph's adjacency slices, so the
//	visit sequence and the parent tree are fully reproducible.
//
// Parent recording
//
//	A vertex is marked when it is discovered, not when it is dequeued, so it
//	is enqueued at most once. The recorded parent is the first vertex in BFS
//	order that discovered it: the same tree a dequeue-time check would build.
//
// Dangling vertices
//
//	Neighbors that are not keys of the graph follow core.DanglingPolicy, with
//	the same default (strict) as package dijkstra. Under DanglingSink they are
//	visited, recorded, and expanded as vertices with no outgoing edges.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	g := core.Graph[string]{
//	    "s": {"a", "b"},
//	    "a": {"b"},
//	    "b": {"c"},
//	    "c": {"a", "d"},
//	    "d": nil,
//	}
//	res, err := bfs.BFS(g, "s")
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//	    // core.ErrDanglingVertex, context errors or hook errors
//	}
//	path, _ := res.PathTo("d") // [s b c]
//
//	// With functional options (non-hook options need the vertex type spelled out):
//	res, err = bfs.BFS(
//	    g, "s",
//	    bfs.WithContext[string](ctx),
//	    bfs.WithMaxDepth[string](3),
//	    bfs.WithFilterNeighbor(func(curr, nbr string) bool { return curr != "skip" }),
//	    bfs.WithOnVisit(func(v string, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start vertex is not a key (wraps core.ErrVertexNotFound).
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - core.ErrDanglingVertex  if a neighbor is not a key under DanglingStrict.
//   - Wrapped user-supplied hook errors from OnVisit, and ctx.Err() on cancellation.
package bfs
