// Package dijkstra implements a lexicographic variant of Dijkstra's algorithm:
// shortest total weight first, fewest edges among equally light paths second.
//
// Notes on implementation choices:
//
//   - We scan all arcs upfront (O(E)) to reject negative weights and, under the
//     strict policy, dangling references, so no partial result ever escapes.
//   - We use a "lazy" decrease-key strategy: improved costs are pushed as new heap
//     entries and outdated entries are skipped when popped.
//   - Heap ties on (weight, edges) are broken by insertion sequence, so vertices
//     need no ordering of their own.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/lexpath/core"
	"github.com/katalvlaran/lexpath/internal/telemetry"
)

// Dijkstra computes, for every vertex of g, the lexicographically smallest
// (weight, edges) cost of a path from source.
//
// Returns:
//
//   - cost: map from vertex to its core.Cost; unreachable vertices map to
//     core.Unreachable(). Under core.DanglingSink, dangling vertices are keys too.
//   - prev: predecessor map if WithReturnPath was given (nil otherwise).
//     The source maps to core.NoParent; unreachable vertices are absent.
//   - err:  error if inputs are invalid, the context is cancelled, or a negative
//     weight is detected.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. options must be valid (ErrOptionViolation).
//  3. g must contain source as a key (ErrVertexNotFound).
//  4. no arc may carry a negative weight (ErrNegativeWeight).
//  5. under DanglingStrict every arc head must be a key (core.ErrDanglingVertex).
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
func Dijkstra[V comparable](g core.WeightedGraph[V], source V, opts ...Option) (map[V]core.Cost, core.Parents[V], error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}

	// 3) Validate source exists in the graph
	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("%w: source %v", ErrVertexNotFound, source)
	}

	// 4) Pre-scan all arcs: negative weights and dangling heads fail fast.
	for u, arcs := range g {
		for _, a := range arcs {
			if a.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: edge %v→%v weight=%d", ErrNegativeWeight, u, a.To, a.Weight)
			}
		}
	}
	if err := g.CheckDangling(cfg.Dangling); err != nil {
		return nil, nil, err
	}

	rec := telemetry.Default()
	if cfg.TracerProvider != nil || cfg.MeterProvider != nil {
		rec = telemetry.New(cfg.TracerProvider, cfg.MeterProvider)
	}
	ctx, span := rec.Start(cfg.Ctx, "dijkstra", g.Order(), g.Size())

	r := newRunner(g, source, cfg)
	r.ctx = ctx
	r.init()
	err := r.process()
	span.End(ctx, r.settled, err)

	cfg.Logger.DebugContext(ctx, "dijkstra: search finished",
		"source", source,
		"settled", r.settled,
		"pushes", r.pushes,
		"stale", r.stale,
		"elapsed", span.Elapsed(),
		"error", err,
	)

	if err != nil {
		return nil, nil, err
	}
	if !cfg.ReturnPath {
		return r.cost, nil, nil
	}

	return r.cost, r.prev, nil
}
