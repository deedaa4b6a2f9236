// Package metrics exposes gateway and ledger query metrics for Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/DjordjeVuckovic/ledger-explorer/internal/apperr"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ledger_explorer"

// Recorder counts ledger queries and request failures.
// It implements query.Recorder and apperr.FailureCounter.
type Recorder struct {
	registry *prometheus.Registry
	queries  *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	failures *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := &Recorder{
		registry: reg,
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_queries_total",
			Help:      "Ledger queries by entity kind and outcome.",
		}, []string{"kind", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ledger_query_duration_seconds",
			Help:      "Ledger query latency by entity kind.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request_failures_total",
			Help:      "Failed requests by client-facing failure kind.",
		}, []string{"kind"}),
	}
	reg.MustRegister(r.queries, r.latency, r.failures)

	return r
}

func (r *Recorder) ObserveQuery(kind ledger.Kind, outcome string, elapsed time.Duration) {
	r.queries.WithLabelValues(string(kind), outcome).Inc()
	r.latency.WithLabelValues(string(kind)).Observe(elapsed.Seconds())
}

func (r *Recorder) CountFailure(kind apperr.Kind) {
	r.failures.WithLabelValues(kind.String()).Inc()
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
