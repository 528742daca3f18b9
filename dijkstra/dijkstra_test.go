// Package dijkstra_test contains unit tests for the lexicographic Dijkstra
// implementation: validation, the reference scenario, options, dangling
// policies, and a brute-force cross-check on random graphs.
package dijkstra_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/lexpath/core"
	"github.com/katalvlaran/lexpath/dijkstra"
)

// sampleGraph is the reference scenario: two equally light routes to d,
// one of them with fewer edges, and an unreachable e.
func sampleGraph() core.WeightedGraph[string] {
	return core.WeightedGraph[string]{
		"s": {{To: "a", Weight: 1}, {To: "c", Weight: 4}},
		"a": {{To: "b", Weight: 2}},
		"b": {{To: "c", Weight: 1}, {To: "d", Weight: 4}},
		"c": {{To: "d", Weight: 3}},
		"d": nil,
		"e": {{To: "d", Weight: 0}},
	}
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, _, err := dijkstra.Dijkstra[string](nil, "s")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(sampleGraph(), "x")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestDijkstra_NegativeWeight(t *testing.T) {
	g := core.WeightedGraph[string]{
		"A": {{To: "B", Weight: -5}},
		"B": nil,
	}
	_, _, err := dijkstra.Dijkstra(g, "A")
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	assert.Contains(t, err.Error(), "A→B")
}

func TestDijkstra_NegativeWeightUnreachableStillRejected(t *testing.T) {
	// the pre-scan covers the whole graph, not only the reachable part
	g := core.WeightedGraph[string]{
		"A": nil,
		"X": {{To: "A", Weight: -1}},
	}
	_, _, err := dijkstra.Dijkstra(g, "A")
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_OptionViolations(t *testing.T) {
	g := sampleGraph()
	cases := map[string]dijkstra.Option{
		"negative max weight":  dijkstra.WithMaxWeight(-1),
		"zero inf threshold":   dijkstra.WithInfEdgeThreshold(0),
		"negative threshold":   dijkstra.WithInfEdgeThreshold(-3),
		"unknown policy value": dijkstra.WithDanglingPolicy(core.DanglingPolicy(42)),
	}
	for name, opt := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := dijkstra.Dijkstra(g, "s", opt)
			require.ErrorIs(t, err, dijkstra.ErrOptionViolation)
		})
	}
}

// ------------------------------------------------------------------------
// 2. Reference scenario and basic properties.
// ------------------------------------------------------------------------

func TestDijkstra_ReferenceScenario(t *testing.T) {
	cost, prev, err := dijkstra.Dijkstra(sampleGraph(), "s")
	require.NoError(t, err)
	assert.Nil(t, prev, "prev must be nil without WithReturnPath")

	want := map[string]core.Cost{
		"s": {Weight: 0, Edges: 0},
		"a": {Weight: 1, Edges: 1},
		"b": {Weight: 3, Edges: 2},
		"c": {Weight: 4, Edges: 1},
		"d": {Weight: 7, Edges: 2},
		"e": core.Unreachable(),
	}
	assert.Equal(t, want, cost)
	assert.False(t, cost["e"].Reachable())
}

func TestDijkstra_ReturnPath(t *testing.T) {
	cost, prev, err := dijkstra.Dijkstra(sampleGraph(), "s", dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.NotNil(t, prev)

	assert.True(t, prev.Root("s"))
	assert.Equal(t, core.ParentOf("c"), prev["d"], "d is reached through c with two edges")
	assert.Equal(t, core.ParentOf("s"), prev["c"])
	assert.NotContains(t, prev, "e", "unreachable vertices have no tree link")

	path, err := prev.PathTo("d")
	require.NoError(t, err)
	assert.Equal(t, []string{"s", "c"}, path)
	assert.Equal(t, cost["d"].Edges, len(path))
}

func TestDijkstra_SingleVertexAndSelfLoop(t *testing.T) {
	g := core.WeightedGraph[int]{
		1: {{To: 1, Weight: 0}, {To: 1, Weight: 3}},
	}
	cost, prev, err := dijkstra.Dijkstra(g, 1, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, map[int]core.Cost{1: {}}, cost)
	assert.True(t, prev.Root(1))
}

func TestDijkstra_MultiEdgesPickLightest(t *testing.T) {
	g := core.WeightedGraph[string]{
		"A": {{To: "B", Weight: 9}, {To: "B", Weight: 2}, {To: "B", Weight: 5}},
		"B": nil,
	}
	cost, _, err := dijkstra.Dijkstra(g, "A")
	require.NoError(t, err)
	assert.Equal(t, core.Cost{Weight: 2, Edges: 1}, cost["B"])
}

func TestDijkstra_ZeroWeightTieBreak(t *testing.T) {
	// A→B→C→D is free; A→D is free too and must win on hops.
	g := core.WeightedGraph[string]{
		"A": {{To: "B", Weight: 0}, {To: "D", Weight: 0}},
		"B": {{To: "C", Weight: 0}},
		"C": {{To: "D", Weight: 0}, {To: "A", Weight: 0}},
		"D": nil,
	}
	cost, prev, err := dijkstra.Dijkstra(g, "A", dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, core.Cost{Weight: 0, Edges: 1}, cost["D"])
	assert.Equal(t, core.Cost{Weight: 0, Edges: 2}, cost["C"])
	assert.Equal(t, core.ParentOf("A"), prev["D"])
}

func TestDijkstra_LaterFewerEdgesImprovesRecord(t *testing.T) {
	// The 3-edge route to T is discovered first; the 2-edge one of equal weight replaces it.
	g := core.WeightedGraph[string]{
		"S": {{To: "X", Weight: 1}, {To: "Y", Weight: 3}},
		"X": {{To: "Z", Weight: 1}},
		"Z": {{To: "T", Weight: 1}},
		"Y": {{To: "T", Weight: 0}},
		"T": nil,
	}
	cost, prev, err := dijkstra.Dijkstra(g, "S", dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, core.Cost{Weight: 3, Edges: 2}, cost["T"])
	assert.Equal(t, core.ParentOf("Y"), prev["T"])
}

// ------------------------------------------------------------------------
// 3. Options.
// ------------------------------------------------------------------------

func TestDijkstra_MaxWeight(t *testing.T) {
	cost, prev, err := dijkstra.Dijkstra(sampleGraph(), "s",
		dijkstra.WithMaxWeight(3),
		dijkstra.WithReturnPath(),
	)
	require.NoError(t, err)
	assert.Equal(t, core.Cost{Weight: 3, Edges: 2}, cost["b"])
	assert.Equal(t, core.Unreachable(), cost["c"])
	assert.Equal(t, core.Unreachable(), cost["d"])
	assert.NotContains(t, prev, "d")
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	// s→c (4) is impassable: c must be reached through a and b.
	cost, _, err := dijkstra.Dijkstra(sampleGraph(), "s", dijkstra.WithInfEdgeThreshold(4))
	require.NoError(t, err)
	assert.Equal(t, core.Cost{Weight: 4, Edges: 3}, cost["c"])
	assert.Equal(t, core.Cost{Weight: 7, Edges: 4}, cost["d"])
}

func TestDijkstra_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := dijkstra.Dijkstra(sampleGraph(), "s", dijkstra.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestDijkstra_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, _, err := dijkstra.Dijkstra(sampleGraph(), "s", dijkstra.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "dijkstra: search finished")
	assert.Contains(t, buf.String(), "settled=5")
}

func TestDijkstra_Telemetry(t *testing.T) {
	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	mp := sdkmetric.NewMeterProvider()
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		_ = mp.Shutdown(context.Background())
	})

	_, _, err := dijkstra.Dijkstra(sampleGraph(), "s",
		dijkstra.WithTracerProvider(tp),
		dijkstra.WithMeterProvider(mp),
	)
	require.NoError(t, err)

	ended := spans.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "lexpath.dijkstra", ended[0].Name())
}

// ------------------------------------------------------------------------
// 4. Dangling references.
// ------------------------------------------------------------------------

func danglingGraph() core.WeightedGraph[string] {
	return core.WeightedGraph[string]{
		"A": {{To: "B", Weight: 1}, {To: "Z", Weight: 2}}, // Z is not a key
		"B": {{To: "C", Weight: 1}},
		"C": nil,
	}
}

func TestDijkstra_DanglingStrict(t *testing.T) {
	cost, prev, err := dijkstra.Dijkstra(danglingGraph(), "A")
	require.ErrorIs(t, err, core.ErrDanglingVertex)
	assert.Contains(t, err.Error(), "Z")
	assert.Nil(t, cost)
	assert.Nil(t, prev)
}

func TestDijkstra_DanglingSink(t *testing.T) {
	cost, prev, err := dijkstra.Dijkstra(danglingGraph(), "A",
		dijkstra.WithDanglingPolicy(core.DanglingSink),
		dijkstra.WithReturnPath(),
	)
	require.NoError(t, err)
	assert.Equal(t, core.Cost{Weight: 2, Edges: 1}, cost["Z"])
	assert.Equal(t, core.Cost{Weight: 2, Edges: 2}, cost["C"])
	assert.Equal(t, core.ParentOf("A"), prev["Z"])
	assert.Len(t, cost, 4)
}

// ------------------------------------------------------------------------
// 5. Brute-force cross-check on random graphs.
// ------------------------------------------------------------------------

// BruteForceSuite compares Dijkstra against exhaustive simple-path enumeration.
type BruteForceSuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *BruteForceSuite) SetupTest() {
	s.rng = rand.New(rand.NewPCG(7, 11))
}

// randomGraph builds n vertices with each arc present with probability p and
// weights in [0, maxW]. Zero weights are frequent so ties are common.
func (s *BruteForceSuite) randomGraph(n int, p float64, maxW int64) core.WeightedGraph[int] {
	g := make(core.WeightedGraph[int], n)
	for u := 0; u < n; u++ {
		g[u] = nil
		for v := 0; v < n; v++ {
			if s.rng.Float64() < p {
				g[u] = append(g[u], core.Arc[int]{To: v, Weight: s.rng.Int64N(maxW + 1)})
			}
		}
	}
	return g
}

// bruteForce returns the lexicographic minimum over all simple paths from src.
// With non-negative weights a repeated vertex never helps either component.
func bruteForce(g core.WeightedGraph[int], src int) map[int]core.Cost {
	best := make(map[int]core.Cost, len(g))
	for v := range g {
		best[v] = core.Unreachable()
	}
	onPath := map[int]bool{src: true}

	var walk func(u int, c core.Cost)
	walk = func(u int, c core.Cost) {
		if c.Less(best[u]) {
			best[u] = c
		}
		for _, a := range g[u] {
			if onPath[a.To] {
				continue
			}
			onPath[a.To] = true
			walk(a.To, c.Extend(a.Weight))
			onPath[a.To] = false
		}
	}
	walk(src, core.Cost{})

	return best
}

func (s *BruteForceSuite) TestMatchesEnumeration() {
	for round := 0; round < 60; round++ {
		n := 2 + s.rng.IntN(6)
		g := s.randomGraph(n, 0.35, 4)
		src := s.rng.IntN(n)

		got, prev, err := dijkstra.Dijkstra(g, src, dijkstra.WithReturnPath())
		s.Require().NoError(err)
		s.Require().Equal(bruteForce(g, src), got, "round %d, graph %v, source %d", round, g, src)

		// every reachable vertex has a tree path realising its cost
		for v, c := range got {
			if !c.Reachable() {
				s.NotContains(prev, v)
				continue
			}
			path, err := prev.PathTo(v)
			s.Require().NoError(err)
			s.Equal(c.Edges, len(path), "edge count of %d", v)
		}
	}
}

func (s *BruteForceSuite) TestUnitWeightsMatchHopCount() {
	for round := 0; round < 30; round++ {
		n := 3 + s.rng.IntN(5)
		g := s.randomGraph(n, 0.3, 0)
		unit := core.UnitWeightView(core.UnweightedView(g))

		got, _, err := dijkstra.Dijkstra(unit, 0)
		s.Require().NoError(err)
		for v, c := range got {
			if c.Reachable() {
				s.Equal(c.Weight, int64(c.Edges), "vertex %d", v)
			}
		}
	}
}

func TestBruteForceSuite(t *testing.T) {
	suite.Run(t, new(BruteForceSuite))
}

func TestDijkstra_ConcurrentCalls(t *testing.T) {
	g := sampleGraph()
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() {
			cost, _, err := dijkstra.Dijkstra(g, "s")
			if err == nil && cost["d"] != (core.Cost{Weight: 7, Edges: 2}) {
				err = errors.New("unexpected cost for d")
			}
			errs <- err
		}()
	}
	for i := 0; i < 4; i++ {
		require.NoError(t, <-errs)
	}
}
