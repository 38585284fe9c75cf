package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APILatency measures HTTP request latencies.
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_api_latency_seconds",
			Help:    "API endpoint latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// AuthAttempts records login attempts by result (success|failure).
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_auth_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"result"},
	)

	// CacheLookups counts cache-aside lookups on the laptop list by outcome
	// (hit|miss|error).
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_cache_lookups_total",
			Help: "Total number of laptop list cache lookups",
		},
		[]string{"outcome"},
	)
)
