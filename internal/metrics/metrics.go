// Package metrics defines Prometheus metrics for the configurator.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "configurator"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Health metrics.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 when the last /healthz check succeeded, 0 otherwise.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 when the last /readyz check succeeded, 0 otherwise.",
	})
)

// Recommendation metrics.
var (
	RecommendationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recommendations_total",
		Help:      "Total number of recommendation requests served, by usage.",
	}, []string{"usage"})

	RecommendationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recommendation_errors_total",
		Help:      "Total number of failed recommendation requests, by reason.",
	}, []string{"reason"})

	RecommendationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "recommendation_duration_seconds",
		Help:      "Time spent ranking a catalog for one request.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
	})

	ScoreDistribution = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "score_distribution",
		Help:      "Distribution of scores handed back in recommendations.",
		Buckets:   prometheus.LinearBuckets(0, 10, 11), // 0, 10, 20, ..., 100
	})
)

// Catalog metrics.
var (
	CatalogItems = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "catalog_items",
		Help:      "Number of items in the active catalog snapshot.",
	})

	CatalogMalformedItems = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "catalog_malformed_items",
		Help:      "Number of malformed items in the active catalog snapshot.",
	})

	MalformedItemsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "malformed_items_total",
		Help:      "Total number of malformed items seen while loading catalogs.",
	})

	CatalogRefreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "catalog_refresh_duration_seconds",
		Help:      "Duration of catalog refreshes in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	CatalogRefreshErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_refresh_errors_total",
		Help:      "Total number of failed catalog refreshes, by source.",
	}, []string{"source"})

	CatalogLastRefreshTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "catalog_last_refresh_timestamp_seconds",
		Help:      "Unix time of the last successful catalog refresh.",
	})
)

// Cache metrics.
var (
	CacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_hits_total",
		Help:      "Total number of catalog cache hits.",
	})

	CacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_misses_total",
		Help:      "Total number of catalog cache misses.",
	})

	CacheErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_errors_total",
		Help:      "Total number of catalog cache errors.",
	})
)

// Remote catalog metrics.
var (
	RemoteCatalogRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "remote_catalog_requests_total",
		Help:      "Total number of requests made to a remote catalog, by status.",
	}, []string{"status"})

	RemoteCatalogRateLimitWaits = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "remote_catalog_rate_limit_wait_seconds",
		Help:      "Time spent waiting on the remote catalog rate limiter.",
		Buckets:   prometheus.DefBuckets,
	})
)
