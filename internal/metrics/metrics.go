package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Recommendation sets returned, by cache outcome",
		},
		[]string{"cache"},
	)

	ProgramScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_program_score",
			Help:    "Distribution of computed program scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	BatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_batch_size",
			Help:    "Number of answer sets per batch request",
			Buckets: []float64{1, 5, 10, 25, 50, 100},
		},
	)

	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_reloads_total",
			Help: "Catalog reload attempts, by result",
		},
		[]string{"result"},
	)

	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_cache_errors_total",
			Help: "Cache operations that failed, by operation",
		},
		[]string{"op"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)
)

// Cache outcome labels.
const (
	CacheHit      = "hit"
	CacheMiss     = "miss"
	CacheDisabled = "disabled"
)

// Reload result labels.
const (
	ReloadSuccess = "success"
	ReloadFailure = "failure"
)
