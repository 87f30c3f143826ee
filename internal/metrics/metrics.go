// Package metrics holds the Prometheus collectors of the strategy service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StrategyRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strategy_requests_total",
			Help: "Total number of strategy generation requests by outcome",
		},
		[]string{"status", "error_code"},
	)

	StrategyDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "strategy_generation_duration_seconds",
			Help:    "Duration of strategy generation in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
		[]string{"status"},
	)

	StrategyCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "strategy_cache_hits_total",
			Help: "Total number of strategy responses served from cache",
		},
	)

	StrategyRunsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strategy_runs_recorded_total",
			Help: "Total number of strategy runs written to history by result",
		},
		[]string{"result"},
	)
)
