package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, RecommendationsTotal)
	assert.NotNil(t, RecommendationErrorsTotal)
	assert.NotNil(t, RecommendationDuration)
	assert.NotNil(t, ScoreDistribution)
	assert.NotNil(t, CatalogItems)
	assert.NotNil(t, CatalogMalformedItems)
	assert.NotNil(t, MalformedItemsTotal)
	assert.NotNil(t, CatalogRefreshDuration)
	assert.NotNil(t, CatalogRefreshErrorsTotal)
	assert.NotNil(t, CatalogLastRefreshTimestamp)
	assert.NotNil(t, CacheHitsTotal)
	assert.NotNil(t, CacheMissesTotal)
	assert.NotNil(t, CacheErrorsTotal)
	assert.NotNil(t, RemoteCatalogRequestsTotal)
	assert.NotNil(t, RemoteCatalogRateLimitWaits)
}

func TestMetricsNamespace(t *testing.T) {
	t.Parallel()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	found := false
	for _, mf := range families {
		if mf.GetName() == "configurator_catalog_items" {
			found = true
		}
	}
	assert.True(t, found, "configurator_catalog_items should be registered")
}

func TestScoreDistributionBuckets(t *testing.T) {
	t.Parallel()

	h := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "scratch_scores",
		Buckets: prometheus.LinearBuckets(0, 10, 11),
	})
	h.Observe(80)
	h.Observe(50)

	assert.Equal(t, 1, testutil.CollectAndCount(h))
}
