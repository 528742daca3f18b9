// Package core defines the data shapes shared by the lexpath search packages:
// caller-owned adjacency maps, lexicographic path costs, parent links and
// path reconstruction.
//
// Graph shapes:
//
//	Graph[V]          map[V][]V        unweighted, neighbor order = slice order
//	WeightedGraph[V]  map[V][]Arc[V]   weighted,   Arc{To, Weight}
//
// V is any comparable type. Graphs are plain map literals; there is no
// mutation API and nothing in lexpath writes to a graph it is given:
//
//	g := core.WeightedGraph[string]{
//	    "s": {{To: "a", Weight: 1}, {To: "c", Weight: 4}},
//	    "a": {{To: "b", Weight: 2}},
//	    "b": nil,
//	    "c": nil,
//	}
//
// Dangling vertices:
//
//	A vertex that appears in an adjacency but not as a key is "dangling".
//	DanglingPolicy decides what the searches do with it:
//	  • DanglingStrict (default) – the search fails with ErrDanglingVertex
//	    before doing any work.
//	  • DanglingSink – the vertex is treated as having no outgoing edges and
//	    shows up in the results like any other vertex.
//
// Costs:
//
//	Cost{Weight, Edges} orders paths lexicographically: lower total weight
//	wins, equal weights fall back to fewer edges. Unreachable vertices carry
//	Cost{Infinity, 0}.
//
// Search trees and paths:
//
//	Parents[V] maps each vertex to a Parent[V] link; the root carries the
//	NoParent marker (Valid == false). PathTo walks the links back to the root
//	and returns the route without the destination, so the path to the root
//	itself is empty and an unknown destination is ErrVertexNotFound.
//
// Views:
//
//	UnweightedView drops weights; UnitWeightView assigns weight 1 to every
//	edge. Neither mutates its input.
//
// Complexity:
//
//	Every query here is O(V + E) at worst; PathTo is O(path length).
package core
