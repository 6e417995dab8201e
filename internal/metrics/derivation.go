package metrics

import "github.com/prometheus/client_golang/prometheus"

// Derivation Prometheus metrics.
var (
	DeriveDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "seedicon",
			Name:      "derive_duration_seconds",
			Help:      "Identicon derivation duration in seconds",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
		[]string{"strategy"},
	)

	DerivationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seedicon",
			Name:      "derivations_total",
			Help:      "Total number of identicon derivations",
		},
		[]string{"strategy", "status"},
	)

	ParamCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seedicon",
			Name:      "param_cache_total",
			Help:      "Derived-parameter cache hits and misses",
		},
		[]string{"layer", "result"}, // layer: "lru" / "store"; result: "hit" / "miss"
	)
)

var derivationMetricsRegistered bool

// RegisterDerivationMetrics registers Prometheus derivation metrics. Must be called once from main.
func RegisterDerivationMetrics() {
	if derivationMetricsRegistered {
		return
	}
	prometheus.MustRegister(DeriveDuration)
	prometheus.MustRegister(DerivationsTotal)
	prometheus.MustRegister(ParamCacheTotal)
	derivationMetricsRegistered = true
}
