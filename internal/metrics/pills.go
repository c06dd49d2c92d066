package metrics

import "github.com/prometheus/client_golang/prometheus"

// Pill pipeline metrics. Registered explicitly from main, not via init(),
// so tests can construct use cases without touching the global registry.
var (
	// PillLookupsTotal counts per-pill exact-count lookups by outcome (ok, error).
	PillLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "smartpills",
			Name:      "pill_lookups_total",
			Help:      "Per-pill count lookups against the hosted index by outcome",
		},
		[]string{"outcome"},
	)

	// CacheOpsTotal counts response cache operations by op (get, set) and outcome
	// (hit, miss, error, ok).
	CacheOpsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "smartpills",
			Name:      "cache_ops_total",
			Help:      "Response cache operations by outcome",
		},
		[]string{"op", "outcome"},
	)

	// PillsGenerated observes how many pills survive a full generation run.
	PillsGenerated = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "smartpills",
			Name:      "pills_generated",
			Help:      "Number of pills returned per generation run",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 10, 12, 15},
		},
	)
)

// RegisterPillMetrics registers pill pipeline metrics with the default registry.
func RegisterPillMetrics() {
	prometheus.MustRegister(PillLookupsTotal, CacheOpsTotal, PillsGenerated)
}
