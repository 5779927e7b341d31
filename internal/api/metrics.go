package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the process-wide Prometheus collectors scraped at /metrics.
// Grounded on the rest of the example pack's client_golang usage pattern:
// promauto-registered collectors held on a struct, updated from the tick
// loop, read passively by promhttp.Handler.
var Metrics = struct {
	TickDuration        prometheus.Histogram
	InvariantViolations *prometheus.CounterVec
	Tick                prometheus.Gauge
}{
	TickDuration: promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "econsim",
		Name:      "tick_duration_seconds",
		Help:      "Wall-clock duration of one simulation tick.",
		Buckets:   prometheus.DefBuckets,
	}),
	InvariantViolations: promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "econsim",
		Name:      "invariant_violations_total",
		Help:      "Count of invariant violations recorded per diagnostic kind.",
	}, []string{"kind"}),
	Tick: promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "econsim",
		Name:      "tick",
		Help:      "Current simulation tick counter.",
	}),
}
