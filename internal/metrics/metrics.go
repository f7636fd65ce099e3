package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	CacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_cache_hits_total",
			Help: "Content cache hits by tag",
		},
		[]string{"tag"},
	)

	FallbackServedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_fallback_served_total",
			Help: "Responses served from the static fallback dataset",
		},
		[]string{"tag"},
	)
)
