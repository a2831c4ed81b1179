package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the refresh pipeline and cache.
type Metrics struct {
	RefreshCycles      *prometheus.CounterVec // labels: outcome={updated,empty,failed,contended}
	RefreshDuration    prometheus.Histogram
	RecordsDropped     prometheus.Counter
	TimestampFallbacks prometheus.Counter
	CachedEvents       prometheus.Gauge
	LastRefreshSuccess prometheus.Gauge
}

func newMetrics() *Metrics {
	return &Metrics{
		RefreshCycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "knmi_induced",
			Name:      "refresh_cycles_total",
			Help:      "Refresh cycles by outcome.",
		}, []string{"outcome"}),
		RefreshDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "knmi_induced",
			Name:      "refresh_duration_seconds",
			Help:      "Duration of a fetch-normalize-swap cycle.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		RecordsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "knmi_induced",
			Name:      "records_dropped_total",
			Help:      "Upstream records dropped for malformed numeric fields.",
		}),
		TimestampFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "knmi_induced",
			Name:      "timestamp_fallbacks_total",
			Help:      "Records kept with the minimum timestamp after a date/time parse failure.",
		}),
		CachedEvents: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "knmi_induced",
			Name:      "cached_events",
			Help:      "Number of events in the current snapshot.",
		}),
		LastRefreshSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "knmi_induced",
			Name:      "last_refresh_success_timestamp_seconds",
			Help:      "Unix time of the last snapshot swap.",
		}),
	}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RefreshCycles,
		m.RefreshDuration,
		m.RecordsDropped,
		m.TimestampFallbacks,
		m.CachedEvents,
		m.LastRefreshSuccess,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics so tests can build many of them.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
