package cli

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "lvsearch"

// searchMetrics collects per-run statistics for compare. Collectors live in
// a private registry so that several command runs never collide.
type searchMetrics struct {
	registry *prometheus.Registry
	runs     *prometheus.CounterVec
	expanded *prometheus.HistogramVec
	duration *prometheus.HistogramVec
	length   *prometheus.GaugeVec
}

func newSearchMetrics() *searchMetrics {
	m := &searchMetrics{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "runs_total",
				Help:      "Search runs by algorithm and outcome",
			},
			[]string{"algorithm", "outcome"},
		),
		expanded: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "expanded_states",
				Help:      "States expanded per search run",
				Buckets:   prometheus.ExponentialBuckets(1, 10, 8),
			},
			[]string{"algorithm"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "run_duration_seconds",
				Help:      "Wall-clock time per search run",
				Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10, 30, 60},
			},
			[]string{"algorithm"},
		),
		length: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "solution_length",
				Help:      "Actions in the reported path per problem and algorithm",
			},
			[]string{"problem", "algorithm"},
		),
	}
	m.registry.MustRegister(m.runs, m.expanded, m.duration, m.length)

	return m
}

// observe records one report. Safe for concurrent use.
func (m *searchMetrics) observe(r Report) {
	label := r.label()
	m.runs.WithLabelValues(label, r.Outcome).Inc()
	m.expanded.WithLabelValues(label).Observe(float64(r.Expanded))
	m.duration.WithLabelValues(label).Observe(r.ElapsedMS / 1000)
	if r.Found {
		m.length.WithLabelValues(r.Problem, label).Set(float64(r.Length))
	}
}

// writeTextfile writes the registry in the Prometheus text format, suitable
// for the node_exporter textfile collector.
func (m *searchMetrics) writeTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
