package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Metrics holds the Prometheus counters, histograms, and gauges for one
// pipeline run. Each run registers against its own registry; a batch process
// has no scrape endpoint, so delivery happens through [Metrics.Push].
type Metrics struct {
	IncidentsLoaded   prometheus.Counter
	RegionsAggregated prometheus.Counter
	BoundaryFetches   *prometheus.CounterVec // labels: outcome={success,error}
	RenderDuration    prometheus.Histogram
	RunOutcome        *prometheus.CounterVec // labels: pipeline, outcome={success,error}

	registry *prometheus.Registry
}

// NewMetrics creates all pipeline metrics on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		IncidentsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "crimemaps",
			Name:      "incidents_loaded_total",
			Help:      "Incident rows loaded from the database.",
		}),
		RegionsAggregated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "crimemaps",
			Name:      "regions_aggregated_total",
			Help:      "Boundary polygons annotated with incident counts.",
		}),
		BoundaryFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crimemaps",
			Name:      "boundary_fetches_total",
			Help:      "Boundary feed fetches by outcome.",
		}, []string{"outcome"}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "crimemaps",
			Name:      "render_duration_seconds",
			Help:      "Duration of a complete load-aggregate-render-write run.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		RunOutcome: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crimemaps",
			Name:      "run_outcome_total",
			Help:      "Pipeline run completions by outcome.",
		}, []string{"pipeline", "outcome"}),

		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.IncidentsLoaded,
		m.RegionsAggregated,
		m.BoundaryFetches,
		m.RenderDuration,
		m.RunOutcome,
	)

	return m
}

// Push delivers the run's metrics to a Prometheus Pushgateway under the given
// job name. Called once at the end of a run when a gateway is configured.
func (m *Metrics) Push(gatewayURL, job string) error {
	return push.New(gatewayURL, job).Gatherer(m.registry).Push()
}
