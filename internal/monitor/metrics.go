package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	checksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "monitor_checks_total",
		Help: "Trip price checks by outcome",
	}, []string{"outcome"})

	notificationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "monitor_notifications_total",
		Help: "Price alerts dispatched",
	})

	cycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "monitor_cycle_duration_seconds",
		Help:    "Wall time of one full monitoring cycle",
		Buckets: prometheus.DefBuckets,
	})
)
