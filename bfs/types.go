// Package bfs provides tunable options and error definitions
// for breadth‐first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lexpath/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is not a key of the graph.
	// It wraps core.ErrVertexNotFound.
	ErrStartVertexNotFound = fmt.Errorf("bfs: start vertex not found: %w", core.ErrVertexNotFound)

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[V comparable] func(*BFSOptions[V])

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions[V comparable] struct {
	// Ctx allows cancellation and deadlines, and parents the search span.
	Ctx context.Context

	// OnEnqueue is called when a vertex is enqueued, before visiting.
	// Receives the vertex and its depth from the start.
	OnEnqueue func(v V, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(v V, depth int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v V, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor V) bool

	// Dangling selects how neighbors that are not keys are handled.
	Dangling core.DanglingPolicy

	// Logger receives a debug summary of every search.
	Logger *slog.Logger

	// TracerProvider and MeterProvider override the global otel providers.
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
//   - strict dangling policy
//   - discarding logger.
func DefaultOptions[V comparable]() BFSOptions[V] {
	return BFSOptions[V]{
		Ctx:            context.Background(),
		OnEnqueue:      func(V, int) {},
		OnDequeue:      func(V, int) {},
		OnVisit:        func(V, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ V) bool { return true },
		Dangling:       core.DanglingStrict,
		Logger:         slog.New(slog.DiscardHandler),
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[V comparable](ctx context.Context) Option[V] {
	return func(o *BFSOptions[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[V comparable](fn func(v V, depth int)) Option[V] {
	return func(o *BFSOptions[V]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[V comparable](fn func(v V, depth int)) Option[V] {
	return func(o *BFSOptions[V]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[V comparable](fn func(v V, depth int) error) Option[V] {
	return func(o *BFSOptions[V]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[V comparable](d int) Option[V] {
	return func(o *BFSOptions[V]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[V comparable](fn func(curr, neighbor V) bool) Option[V] {
	return func(o *BFSOptions[V]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithDanglingPolicy selects how edges into non-key vertices are handled.
func WithDanglingPolicy[V comparable](p core.DanglingPolicy) Option[V] {
	return func(o *BFSOptions[V]) {
		if !p.Valid() {
			o.err = fmt.Errorf("%w: unknown dangling policy %v", ErrOptionViolation, p)
			return
		}
		o.Dangling = p
	}
}

// WithLogger routes debug output to l.
func WithLogger[V comparable](l *slog.Logger) Option[V] {
	return func(o *BFSOptions[V]) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTracerProvider overrides the global OpenTelemetry tracer provider.
func WithTracerProvider[V comparable](tp trace.TracerProvider) Option[V] {
	return func(o *BFSOptions[V]) {
		o.TracerProvider = tp
	}
}

// WithMeterProvider overrides the global OpenTelemetry meter provider.
func WithMeterProvider[V comparable](mp metric.MeterProvider) Option[V] {
	return func(o *BFSOptions[V]) {
		o.MeterProvider = mp
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex to its distance (in edges) from the start.
//   - Parent: map from vertex to its predecessor in the BFS tree; the start
//     carries core.NoParent. Unreached vertices are absent from all three.
type BFSResult[V comparable] struct {
	Order  []V
	Depth  map[V]int
	Parent core.Parents[V]
}

// PathTo reconstructs the path from the start vertex up to, but excluding, dest.
// The path to the start itself is empty. Returns core.ErrVertexNotFound if
// dest was not reached.
func (r *BFSResult[V]) PathTo(dest V) ([]V, error) {
	return core.PathTo(r.Parent, dest)
}

// Reached reports whether v was discovered by the search.
func (r *BFSResult[V]) Reached(v V) bool {
	_, ok := r.Parent[v]
	return ok
}
