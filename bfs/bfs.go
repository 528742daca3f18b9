// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lexpath/core"
	"github.com/katalvlaran/lexpath/internal/telemetry"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	id    V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable] struct {
	graph   core.Graph[V]
	opts    BFSOptions[V]
	ctx     context.Context
	queue   []queueItem[V]
	visited map[V]bool
	res     *BFSResult[V]
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
//
// A vertex is marked when it is enqueued, so its recorded parent is the
// first vertex, in BFS order, that discovered it.
//
// Returns ErrGraphNil, ErrOptionViolation or ErrStartVertexNotFound for
// invalid input, core.ErrDanglingVertex under the strict policy, the context
// error on cancellation, or any wrapped OnVisit error. On those last two the
// partial result is returned alongside the error.
func BFS[V comparable](g core.Graph[V], start V, opts ...Option[V]) (*BFSResult[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}
	// Dangling references are settled before any hook fires
	if err := g.CheckDangling(o.Dangling); err != nil {
		return nil, err
	}

	rec := telemetry.Default()
	if o.TracerProvider != nil || o.MeterProvider != nil {
		rec = telemetry.New(o.TracerProvider, o.MeterProvider)
	}
	ctx, span := rec.Start(o.Ctx, "bfs", g.Order(), g.Size())

	// Prepare walker
	n := len(g)
	w := &walker[V]{
		graph:   g,
		opts:    o,
		ctx:     ctx,
		queue:   make([]queueItem[V], 0, n),
		visited: make(map[V]bool, n),
		res: &BFSResult[V]{
			Order:  make([]V, 0, n),
			Depth:  make(map[V]int, n),
			Parent: make(core.Parents[V], n),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, core.NoParent[V]())
	err := w.loop()

	span.End(ctx, len(w.res.Order), err)
	o.Logger.DebugContext(ctx, "bfs: search finished",
		"start", start,
		"visited", len(w.res.Order),
		"discovered", len(w.res.Parent),
		"elapsed", span.Elapsed(),
		"error", err,
	)

	return w.res, err
}

// enqueue marks id visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker[V]) enqueue(id V, d int, parent core.Parent[V]) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem[V]{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[V]) dequeue() queueItem[V] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)
	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[V]) visit(item queueItem[V]) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen
// neighbor with the current vertex as its parent.
func (w *walker[V]) enqueueNeighbors(item queueItem[V]) error {
	neighbors, err := w.graph.Neighbors(item.id, w.opts.Dangling)
	if err != nil {
		return err
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] {
			continue
		}
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, core.ParentOf(item.id))
	}
	return nil
}
