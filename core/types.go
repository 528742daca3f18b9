// File: types.go
// Role: Graph shapes, Cost, parent links, dangling policy and sentinel errors.
//
// Errors:
//
//	ErrVertexNotFound  - requested vertex is not a key of the graph or parent map.
//	ErrDanglingVertex  - an adjacency references a vertex that is not a key (strict policy).
//	ErrBrokenTree      - a parent map contains a cycle.

package core

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDanglingVertex indicates an adjacency entry points at a vertex that is
	// not itself a key of the graph while DanglingStrict is in effect.
	ErrDanglingVertex = errors.New("core: dangling vertex reference")

	// ErrBrokenTree indicates that following parent links never reached the root.
	ErrBrokenTree = errors.New("core: parent links do not form a tree")
)

// Infinity is the weight reported for vertices that cannot be reached.
const Infinity int64 = math.MaxInt64

// Arc is one outgoing, weighted connection of a vertex.
type Arc[V comparable] struct {
	// To is the head of the arc.
	To V

	// Weight is the non-negative cost of traversing the arc.
	Weight int64
}

// Graph is an unweighted directed graph: vertex → ordered neighbor list.
// The slice order is the order in which traversals visit neighbors.
type Graph[V comparable] map[V][]V

// WeightedGraph is a weighted directed graph: vertex → ordered outgoing arcs.
type WeightedGraph[V comparable] map[V][]Arc[V]

// DanglingPolicy selects how a search treats neighbors that are not keys
// of the graph. Both search packages use the same policy type and default.
type DanglingPolicy int

const (
	// DanglingStrict rejects the graph with ErrDanglingVertex before any work is done.
	DanglingStrict DanglingPolicy = iota

	// DanglingSink treats a dangling vertex as a vertex without outgoing edges.
	// It is reported in the results like any other vertex.
	DanglingSink
)

// String implements fmt.Stringer.
func (p DanglingPolicy) String() string {
	switch p {
	case DanglingStrict:
		return "strict"
	case DanglingSink:
		return "sink"
	default:
		return fmt.Sprintf("DanglingPolicy(%d)", int(p))
	}
}

// Valid reports whether p is one of the declared policies.
func (p DanglingPolicy) Valid() bool {
	return p == DanglingStrict || p == DanglingSink
}

// Cost is the lexicographic key of a path: total weight first, edge count second.
type Cost struct {
	Weight int64
	Edges  int
}

// Unreachable returns the cost reported for vertices the source cannot reach.
func Unreachable() Cost {
	return Cost{Weight: Infinity, Edges: 0}
}

// Reachable reports whether c describes an actual path.
func (c Cost) Reachable() bool { return c.Weight != Infinity }

// Less compares by Weight, then by Edges.
func (c Cost) Less(o Cost) bool {
	if c.Weight != o.Weight {
		return c.Weight < o.Weight
	}
	return c.Edges < o.Edges
}

// Extend returns the cost of c followed by one arc of weight w.
// The weight saturates at Infinity instead of overflowing.
func (c Cost) Extend(w int64) Cost {
	next := Cost{Weight: c.Weight + w, Edges: c.Edges + 1}
	if w > 0 && c.Weight > Infinity-w {
		next.Weight = Infinity
	}
	return next
}

// String renders the cost as "(weight, edges)", using "inf" for Infinity.
func (c Cost) String() string {
	if !c.Reachable() {
		return fmt.Sprintf("(inf, %d)", c.Edges)
	}
	return fmt.Sprintf("(%d, %d)", c.Weight, c.Edges)
}

// Parent is a link in a search tree. Valid == false is the "no parent"
// marker carried by the root of the tree.
type Parent[V comparable] struct {
	Vertex V
	Valid  bool
}

// NoParent returns the marker stored for the source of a search.
func NoParent[V comparable]() Parent[V] { return Parent[V]{} }

// ParentOf returns a link pointing at v.
func ParentOf[V comparable](v V) Parent[V] { return Parent[V]{Vertex: v, Valid: true} }

// Parents maps every vertex of a search tree to its parent link.
type Parents[V comparable] map[V]Parent[V]

// Root reports whether v is present and carries the no-parent marker.
func (p Parents[V]) Root(v V) bool {
	link, ok := p[v]
	return ok && !link.Valid
}
