package search

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sweepCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "search_sweep_calls_total",
		Help: "Provider calls issued per sweep",
	}, []string{"sweep"})

	sweepErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "search_sweep_errors_total",
		Help: "Provider call failures per sweep",
	}, []string{"sweep"})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "search_fanout_duration_seconds",
		Help:    "Wall time of one full fan-out run",
		Buckets: prometheus.DefBuckets,
	})
)
