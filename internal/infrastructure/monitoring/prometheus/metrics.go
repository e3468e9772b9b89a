// Package prometheus registers and exposes the engine's operational metrics.
// A dedicated registry is used so the API server can serve engine metrics
// without inheriting the default registry's global state.
package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Default histogram buckets for in-process computation, in seconds.  The
// fragmenter and aggregation methods are CPU-bound and fast; sub-millisecond
// resolution matters more than long tails.
var defaultDurationBuckets = []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1, .25, 1}

// Metrics holds all engine metrics.  Construct once per process with
// NewMetrics and inject where needed.
type Metrics struct {
	registry *prometheus.Registry

	// EstimatesTotal counts completed estimates by method tag and outcome
	// ("computed", "reference", "fallback").
	EstimatesTotal *prometheus.CounterVec

	// EstimateDuration observes end-to-end estimate latency per method.
	EstimateDuration *prometheus.HistogramVec

	// FragmentationDuration observes the greedy fragmentation pass.
	FragmentationDuration prometheus.Histogram

	// ReferenceLookupsTotal counts reference-table lookups by result
	// ("hit", "miss").
	ReferenceLookupsTotal *prometheus.CounterVec

	// PatternCompileFailuresTotal counts functional-group patterns skipped at
	// table load because their matcher failed to compile.
	PatternCompileFailuresTotal prometheus.Counter
}

// NewMetrics builds and registers all engine metrics under the given
// namespace on a fresh registry.
func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		EstimatesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "estimates_total",
			Help:      "Completed HSP estimates by method and outcome.",
		}, []string{"method", "outcome"}),
		EstimateDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "estimate_duration_seconds",
			Help:      "End-to-end estimate latency.",
			Buckets:   defaultDurationBuckets,
		}, []string{"method"}),
		FragmentationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fragmentation_duration_seconds",
			Help:      "Greedy fragmentation pass latency.",
			Buckets:   defaultDurationBuckets,
		}),
		ReferenceLookupsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reference_lookups_total",
			Help:      "Reference-table lookups by result.",
		}, []string{"result"}),
		PatternCompileFailuresTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pattern_compile_failures_total",
			Help:      "Functional-group patterns skipped due to compile failure.",
		}),
	}
}

// Handler returns an HTTP handler serving the engine registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for additional collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
