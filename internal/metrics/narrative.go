package metrics

import "github.com/prometheus/client_golang/prometheus"

// Narrative formatting Prometheus metrics.
var (
	NarrativeRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "actadex",
			Name:      "narrative_requests_total",
			Help:      "Total number of narrative formatting requests",
		},
		[]string{"provider", "model", "status"},
	)

	NarrativeRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "actadex",
			Name:      "narrative_request_duration_seconds",
			Help:      "Narrative formatting request duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"provider", "model"},
	)

	NarrativeTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "actadex",
			Name:      "narrative_tokens_total",
			Help:      "Total narrative tokens consumed",
		},
		[]string{"provider", "model", "type"},
	)

	NarrativeErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "actadex",
			Name:      "narrative_errors_total",
			Help:      "Total narrative formatting errors",
		},
		[]string{"provider", "model", "error_type"},
	)

	NarrativeCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "actadex",
			Name:      "narrative_cache_total",
			Help:      "Narrative cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var narrMetricsRegistered bool

// RegisterNarrativeMetrics registers Prometheus narrative metrics. Must be called once from main.
func RegisterNarrativeMetrics() {
	if narrMetricsRegistered {
		return
	}
	prometheus.MustRegister(NarrativeRequestsTotal)
	prometheus.MustRegister(NarrativeRequestDuration)
	prometheus.MustRegister(NarrativeTokensTotal)
	prometheus.MustRegister(NarrativeErrorsTotal)
	prometheus.MustRegister(NarrativeCacheTotal)
	narrMetricsRegistered = true
}
