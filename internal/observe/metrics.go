// Package observe provides application-wide observability primitives for
// Wandercast: OpenTelemetry metrics, tracing, structured logging helpers, and
// HTTP middleware that ties them together.
//
// Metrics are recorded through the OpenTelemetry Metrics API. A Prometheus
// exporter bridge is available via [InitProvider] so that metrics can still be
// scraped via the standard /metrics endpoint. A package-level default
// [Metrics] instance ([DefaultMetrics]) is provided for convenience; tests
// should use [NewMetrics] with a custom [metric.MeterProvider] to avoid
// cross-test pollution.
package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all Wandercast metrics.
const meterName = "github.com/wandercast/wandercast"

// Metrics holds all OpenTelemetry metric instruments for the application.
// All fields are safe for concurrent use — the underlying OTel types handle
// their own synchronisation.
type Metrics struct {
	// --- Latency histograms per pipeline stage ---

	// ScriptDuration tracks podcast script generation latency.
	ScriptDuration metric.Float64Histogram

	// SynthesisDuration tracks per-segment speech synthesis latency.
	SynthesisDuration metric.Float64Histogram

	// GenerationDuration tracks the whole pipeline, script request to file write.
	GenerationDuration metric.Float64Histogram

	// --- Counters ---

	// ProviderRequests counts provider API calls. Use with attributes:
	//   attribute.String("provider", ...), attribute.String("kind", ...), attribute.String("status", ...)
	ProviderRequests metric.Int64Counter

	// PodcastsGenerated counts completed generations. Use with attributes:
	//   attribute.String("language", ...), attribute.String("voice", ...)
	PodcastsGenerated metric.Int64Counter

	// SegmentsSynthesized counts synthesised dialogue segments. Use with
	// attribute:
	//   attribute.String("speaker", ...)
	SegmentsSynthesized metric.Int64Counter

	// --- Error counters ---

	// ProviderErrors counts provider errors. Use with attributes:
	//   attribute.String("provider", ...), attribute.String("kind", ...)
	ProviderErrors metric.Int64Counter

	// --- Gauges ---

	// ActiveGenerations tracks the number of podcast generations in flight.
	ActiveGenerations metric.Int64UpDownCounter

	// --- HTTP middleware ---

	// HTTPRequestDuration tracks HTTP request processing time. Use with attributes:
	//   attribute.String("method", ...), attribute.String("path", ...)
	HTTPRequestDuration metric.Float64Histogram
}

// latencyBuckets defines histogram bucket boundaries (in seconds). Script and
// synthesis calls routinely take multiple seconds, so the spread reaches
// further right than a typical request-latency layout.
var latencyBuckets = []float64{
	0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 80,
}

// NewMetrics creates a fully initialised [Metrics] struct using the given
// [metric.MeterProvider]. Returns an error if any instrument creation fails.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	// Histograms.
	if met.ScriptDuration, err = m.Float64Histogram("wandercast.script.duration",
		metric.WithDescription("Latency of podcast script generation."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.SynthesisDuration, err = m.Float64Histogram("wandercast.synthesis.duration",
		metric.WithDescription("Latency of per-segment speech synthesis."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.GenerationDuration, err = m.Float64Histogram("wandercast.generation.duration",
		metric.WithDescription("End-to-end podcast generation latency."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}

	// Counters.
	if met.ProviderRequests, err = m.Int64Counter("wandercast.provider.requests",
		metric.WithDescription("Total provider API requests by provider, kind, and status."),
	); err != nil {
		return nil, err
	}
	if met.PodcastsGenerated, err = m.Int64Counter("wandercast.podcasts.generated",
		metric.WithDescription("Total completed podcast generations by language and voice."),
	); err != nil {
		return nil, err
	}
	if met.SegmentsSynthesized, err = m.Int64Counter("wandercast.segments.synthesized",
		metric.WithDescription("Total synthesised dialogue segments by speaker."),
	); err != nil {
		return nil, err
	}

	// Error counters.
	if met.ProviderErrors, err = m.Int64Counter("wandercast.provider.errors",
		metric.WithDescription("Total provider errors by provider and kind."),
	); err != nil {
		return nil, err
	}

	// Gauges (UpDownCounters).
	if met.ActiveGenerations, err = m.Int64UpDownCounter("wandercast.active_generations",
		metric.WithDescription("Number of podcast generations currently in flight."),
	); err != nil {
		return nil, err
	}

	// HTTP middleware histogram.
	if met.HTTPRequestDuration, err = m.Float64Histogram("wandercast.http.request.duration",
		metric.WithDescription("HTTP request latency by method and path."),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// defaultMetrics is the lazily-initialised package-level Metrics instance.
var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance, creating it on
// first call using [otel.GetMeterProvider]. Subsequent calls return the same
// pointer. Panics if instrument creation fails (should not happen with the
// global provider).
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// Attr is a convenience alias for [attribute.String] to reduce verbosity at
// call sites.
func Attr(key, value string) attribute.KeyValue {
	return attribute.String(key, value)
}

// RecordProviderRequest is a convenience method that records a provider
// request counter increment with the standard attribute set.
func (m *Metrics) RecordProviderRequest(ctx context.Context, provider, kind, status string) {
	m.ProviderRequests.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("provider", provider),
			attribute.String("kind", kind),
			attribute.String("status", status),
		),
	)
}

// RecordProviderError is a convenience method that records a provider error
// counter increment.
func (m *Metrics) RecordProviderError(ctx context.Context, provider, kind string) {
	m.ProviderErrors.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("provider", provider),
			attribute.String("kind", kind),
		),
	)
}

// RecordPodcastGenerated is a convenience method that records a completed
// generation with the standard attribute set.
func (m *Metrics) RecordPodcastGenerated(ctx context.Context, language, voice string) {
	m.PodcastsGenerated.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("language", language),
			attribute.String("voice", voice),
		),
	)
}

// RecordSegmentSynthesized is a convenience method that records one
// synthesised segment attributed to its speaker.
func (m *Metrics) RecordSegmentSynthesized(ctx context.Context, speaker string) {
	m.SegmentsSynthesized.Add(ctx, 1,
		metric.WithAttributes(attribute.String("speaker", speaker)),
	)
}
