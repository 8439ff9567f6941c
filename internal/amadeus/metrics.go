package amadeus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "amadeus_api_requests_total",
		Help: "Successful Amadeus API calls by endpoint",
	}, []string{"endpoint"})

	apiErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "amadeus_api_errors_total",
		Help: "Failed Amadeus API calls by endpoint",
	}, []string{"endpoint"})

	cacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "amadeus_cache_hits_total",
		Help: "Search cache hits by endpoint",
	}, []string{"endpoint"})
)
