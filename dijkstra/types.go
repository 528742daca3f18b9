// Package dijkstra defines core types and configuration options
// for the lexicographic shortest-path search on weighted graphs.
//
// The search orders paths by (total weight, edge count): among all paths of
// minimum weight it reports the one with the fewest edges.
//
// Options:
//
//	– WithReturnPath():         also return the predecessor map of the search tree.
//	– WithMaxWeight(w):         do not settle vertices farther than w (w ≥ 0).
//	– WithInfEdgeThreshold(t):  arcs with weight ≥ t are impassable (t > 0).
//	– WithDanglingPolicy(p):    core.DanglingStrict (default) or core.DanglingSink.
//	– WithContext(ctx):         cancellation and parent span.
//	– WithLogger(l):            debug-level summary logging.
//	– WithTracerProvider / WithMeterProvider: OpenTelemetry providers (globals by default).
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the graph is nil.
//	– ErrOptionViolation  if an option received an invalid value.
//	– ErrVertexNotFound   if the source vertex is not a key of the graph.
//	– ErrNegativeWeight   if any arc carries a negative weight.
//	– core.ErrDanglingVertex under the strict policy.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lexpath/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex is not a key of the graph.
	// It is core.ErrVertexNotFound, so either name matches with errors.Is.
	ErrVertexNotFound = core.ErrVertexNotFound

	// ErrNegativeWeight indicates that a negative arc weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrOptionViolation indicates that an Option was given an invalid value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxWeight        – vertices whose best weight would exceed this value are left
//
//	unreachable. Must be ≥ 0. Default is core.Infinity (no cap).
//
// InfEdgeThreshold – arcs with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is core.Infinity (no obstacles).
type Options struct {
	Ctx              context.Context     // cancellation and span parent
	ReturnPath       bool                // whether to return the predecessor map
	MaxWeight        int64               // maximum weight to explore
	InfEdgeThreshold int64               // weight threshold above which arcs are non-traversable
	Dangling         core.DanglingPolicy // treatment of neighbors that are not keys
	Logger           *slog.Logger        // debug sink; never nil after DefaultOptions

	TracerProvider trace.TracerProvider // nil selects the global provider
	MeterProvider  metric.MeterProvider // nil selects the global provider

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Ctx:              context.Background().
//   - ReturnPath:       false (predecessor map not returned).
//   - MaxWeight:        core.Infinity (explore all reachable vertices).
//   - InfEdgeThreshold: core.Infinity (no arc is impassable).
//   - Dangling:         core.DanglingStrict.
//   - Logger:           discards everything.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		ReturnPath:       false,
		MaxWeight:        math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
		Dangling:         core.DanglingStrict,
		Logger:           slog.New(slog.DiscardHandler),
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not given, the predecessor map is nil.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxWeight sets a maximum weight threshold. Vertices whose best weight
// would exceed max are not explored and stay unreachable.
// Negative values are reported as ErrOptionViolation.
func WithMaxWeight(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxWeight cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxWeight = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which arcs are
// considered non-traversable. Zero or negative values are reported as
// ErrOptionViolation, since they would block zero-weight arcs too.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: InfEdgeThreshold must be positive (%d)", ErrOptionViolation, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithDanglingPolicy selects how arcs into non-key vertices are handled.
func WithDanglingPolicy(p core.DanglingPolicy) Option {
	return func(o *Options) {
		if !p.Valid() {
			o.err = fmt.Errorf("%w: unknown dangling policy %v", ErrOptionViolation, p)
			return
		}
		o.Dangling = p
	}
}

// WithContext sets a custom context for cancellation and tracing.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes debug output to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTracerProvider overrides the global OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		o.TracerProvider = tp
	}
}

// WithMeterProvider overrides the global OpenTelemetry meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *Options) {
		o.MeterProvider = mp
	}
}
