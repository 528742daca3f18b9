package dijkstra

import (
	"container/heap"
	"context"

	"github.com/katalvlaran/lexpath/core"
)

// runner holds the mutable state for a single Dijkstra execution.
type runner[V comparable] struct {
	ctx     context.Context
	g       core.WeightedGraph[V] // read-only within Dijkstra
	source  V
	options Options
	cost    map[V]core.Cost // vertex → best known (weight, edges)
	prev    core.Parents[V] // vertex → predecessor on the best path
	pq      nodePQ[V]
	seq     uint64 // heap tie-breaker

	settled int // vertices expanded
	pushes  int // heap pushes, source included
	stale   int // outdated heap entries skipped
}

func newRunner[V comparable](g core.WeightedGraph[V], source V, cfg Options) *runner[V] {
	n := len(g)
	return &runner[V]{
		ctx:     context.Background(),
		g:       g,
		source:  source,
		options: cfg,
		cost:    make(map[V]core.Cost, n),
		prev:    make(core.Parents[V], n),
		pq:      make(nodePQ[V], 0, n),
	}
}

// init sets every cost to (Infinity, 0), the source to (0, 0), and pushes the source.
func (r *runner[V]) init() {
	for v := range r.g {
		r.cost[v] = core.Unreachable()
	}
	if r.options.Dangling == core.DanglingSink {
		// dangling vertices get a row like any key
		for _, v := range r.g.Dangling() {
			r.cost[v] = core.Unreachable()
		}
	}

	r.cost[r.source] = core.Cost{}
	r.prev[r.source] = core.NoParent[V]()

	heap.Init(&r.pq)
	r.push(r.source, core.Cost{})
}

// process repeatedly pops the lexicographically smallest entry and relaxes its arcs.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The context is done (its error is returned).
func (r *runner[V]) process() error {
	for r.pq.Len() > 0 {
		if err := r.ctx.Err(); err != nil {
			return err
		}

		item := heap.Pop(&r.pq).(*nodeItem[V])

		// An entry worse than the vertex's record was superseded after it was pushed.
		if r.cost[item.id].Less(item.cost) {
			r.stale++
			continue
		}

		r.settled++
		if err := r.relax(item.id, item.cost); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every arc head of u through u.
// Arcs at or above InfEdgeThreshold are skipped, as are candidates beyond MaxWeight.
func (r *runner[V]) relax(u V, cu core.Cost) error {
	arcs, err := r.g.Arcs(u, r.options.Dangling)
	if err != nil {
		return err
	}

	for _, a := range arcs {
		if a.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		cand := cu.Extend(a.Weight)
		if cand.Weight > r.options.MaxWeight || !cand.Reachable() {
			continue
		}
		if !cand.Less(r.cost[a.To]) {
			continue
		}

		r.cost[a.To] = cand
		r.prev[a.To] = core.ParentOf(u)
		r.push(a.To, cand)
	}

	return nil
}

func (r *runner[V]) push(v V, c core.Cost) {
	r.seq++
	r.pushes++
	heap.Push(&r.pq, &nodeItem[V]{id: v, cost: c, seq: r.seq})
}

// nodeItem is a heap entry: a vertex with the cost it was pushed at.
type nodeItem[V comparable] struct {
	id   V
	cost core.Cost
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (cost.Weight, cost.Edges, seq).
type nodePQ[V comparable] []*nodeItem[V]

// Len returns the number of items in the heap.
func (pq nodePQ[V]) Len() int { return len(pq) }

// Less orders by cost lexicographically, then by insertion sequence.
func (pq nodePQ[V]) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost.Less(pq[j].cost)
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ[V]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem, to the heap. Called by heap.Push.
func (pq *nodePQ[V]) Push(x any) { *pq = append(*pq, x.(*nodeItem[V])) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ[V]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
