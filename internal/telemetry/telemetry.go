// Package telemetry holds the OpenTelemetry tracer and instruments used by
// the lexpath searches.
//
// With no providers configured the package falls back to the global otel
// providers, which are no-ops until the embedding program installs real ones.
package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName identifies lexpath spans and metrics.
const InstrumentationName = "github.com/katalvlaran/lexpath"

// Recorder bundles a tracer with the search instruments.
// A nil instrument means its creation failed; it is then skipped.
type Recorder struct {
	tracer  trace.Tracer
	latency metric.Float64Histogram
	total   metric.Int64Counter
	settled metric.Int64Histogram
}

var (
	defaultOnce     sync.Once
	defaultRecorder *Recorder
)

// Default returns the Recorder bound to the global otel providers.
func Default() *Recorder {
	defaultOnce.Do(func() {
		defaultRecorder = New(nil, nil)
	})
	return defaultRecorder
}

// New builds a Recorder from the given providers; nil selects the global one.
func New(tp trace.TracerProvider, mp metric.MeterProvider) *Recorder {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(InstrumentationName)

	r := &Recorder{tracer: tp.Tracer(InstrumentationName)}

	if h, err := meter.Float64Histogram(
		"lexpath_search_duration_seconds",
		metric.WithDescription("Duration of graph searches"),
		metric.WithUnit("s"),
	); err == nil {
		r.latency = h
	}
	if c, err := meter.Int64Counter(
		"lexpath_search_total",
		metric.WithDescription("Total number of graph searches"),
	); err == nil {
		r.total = c
	}
	if h, err := meter.Int64Histogram(
		"lexpath_vertices_settled",
		metric.WithDescription("Number of vertices settled per search"),
	); err == nil {
		r.settled = h
	}

	return r
}

// Search is one in-flight, instrumented search.
type Search struct {
	rec   *Recorder
	span  trace.Span
	algo  string
	start time.Time
}

// Start opens a span named "lexpath.<algo>" carrying the graph dimensions.
func (r *Recorder) Start(ctx context.Context, algo string, order, size int) (context.Context, *Search) {
	ctx, span := r.tracer.Start(ctx, "lexpath."+algo,
		trace.WithAttributes(
			attribute.String("lexpath.algorithm", algo),
			attribute.Int("lexpath.graph.order", order),
			attribute.Int("lexpath.graph.size", size),
		),
	)
	return ctx, &Search{rec: r, span: span, algo: algo, start: time.Now()}
}

// End closes the span and records the search metrics.
func (s *Search) End(ctx context.Context, settled int, err error) {
	success := err == nil

	s.span.SetAttributes(attribute.Int("lexpath.settled", settled))
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	}
	s.span.End()

	attrs := metric.WithAttributes(
		attribute.String("algorithm", s.algo),
		attribute.Bool("success", success),
	)
	if s.rec.latency != nil {
		s.rec.latency.Record(ctx, time.Since(s.start).Seconds(), attrs)
	}
	if s.rec.total != nil {
		s.rec.total.Add(ctx, 1, attrs)
	}
	if success && s.rec.settled != nil {
		s.rec.settled.Record(ctx, int64(settled), metric.WithAttributes(attribute.String("algorithm", s.algo)))
	}
}

// Elapsed reports the time since Start.
func (s *Search) Elapsed() time.Duration { return time.Since(s.start) }
