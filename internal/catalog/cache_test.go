package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Gorgui12/tekalis-configurator/internal/catalog"
	catalogMocks "github.com/Gorgui12/tekalis-configurator/internal/catalog/mocks"
	storeMocks "github.com/Gorgui12/tekalis-configurator/internal/store/mocks"
	"github.com/Gorgui12/tekalis-configurator/pkg/logger"
	domain "github.com/Gorgui12/tekalis-configurator/pkg/types"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *catalog.RedisCache) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, catalog.NewRedisCache(client)
}

func sampleItems() []domain.CatalogItem {
	return []domain.CatalogItem{
		{ID: "tuf", Name: "ASUS TUF Gaming F15", Brand: "ASUS", Price: 650000, UsageTags: []domain.Usage{domain.UsageGaming}},
		{ID: "mba", Name: "MacBook Air M2", Brand: "Apple", Price: 850000, WeightKg: 1.24},
	}
}

func TestRedisCache_RoundTrip(t *testing.T) {
	t.Parallel()

	mr, c := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Ping(ctx))

	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", sampleItems(), time.Minute))
	assert.True(t, mr.Exists("k"))
	assert.Equal(t, time.Minute, mr.TTL("k"))

	got, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sampleItems(), got)

	mr.FastForward(2 * time.Minute)
	_, ok, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok, "entry should expire")

	require.NoError(t, c.Set(ctx, "k", sampleItems(), time.Minute))
	require.NoError(t, c.Delete(ctx, "k"))
	assert.False(t, mr.Exists("k"))
}

func TestRedisCache_CorruptValue(t *testing.T) {
	t.Parallel()

	mr, c := setupRedis(t)
	require.NoError(t, mr.Set("k", "not json"))

	_, _, err := c.Get(context.Background(), "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding cached catalog")
}

func TestRedisCache_ServerDown(t *testing.T) {
	t.Parallel()

	mr, c := setupRedis(t)
	mr.Close()

	_, _, err := c.Get(context.Background(), "k")
	require.Error(t, err)
}

func TestCachedSource_ReadThrough(t *testing.T) {
	t.Parallel()

	mr, c := setupRedis(t)
	ctx := context.Background()

	src := catalogMocks.NewMockSource(t)
	src.EXPECT().Name().Return("http")
	src.EXPECT().Fetch(mock.Anything).Return(sampleItems(), nil).Once()

	cs := catalog.NewCachedSource(src, c, "configurator", 5*time.Minute, logger.Discard())
	assert.Equal(t, "configurator:catalog:http", cs.Key())
	assert.Equal(t, "http+redis", cs.Name())

	// Miss: reads the source and fills the cache.
	got, err := cs.Fetch(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.True(t, mr.Exists(cs.Key()))

	// Hit: the source is not called again (Once above).
	got, err = cs.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleItems(), got)
}

func TestCachedSource_Invalidate(t *testing.T) {
	t.Parallel()

	mr, c := setupRedis(t)
	ctx := context.Background()

	src := catalogMocks.NewMockSource(t)
	src.EXPECT().Name().Return("file:catalog.yaml")
	src.EXPECT().Fetch(mock.Anything).Return(sampleItems(), nil).Twice()

	cs := catalog.NewCachedSource(src, c, "cfg", time.Minute, logger.Discard())

	_, err := cs.Fetch(ctx)
	require.NoError(t, err)

	require.NoError(t, cs.Invalidate(ctx))
	assert.False(t, mr.Exists(cs.Key()))

	_, err = cs.Fetch(ctx)
	require.NoError(t, err)
}

func TestCachedSource_CacheErrorsFallBack(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	cache := catalogMocks.NewMockCache(t)
	cache.EXPECT().Get(mock.Anything, "p:catalog:postgres").Return(nil, false, errors.New("connection refused")).Once()
	cache.EXPECT().Set(mock.Anything, "p:catalog:postgres", mock.Anything, time.Minute).Return(errors.New("connection refused")).Once()

	src := catalogMocks.NewMockSource(t)
	src.EXPECT().Name().Return("postgres")
	src.EXPECT().Fetch(mock.Anything).Return(sampleItems(), nil).Once()

	got, err := catalog.NewCachedSource(src, cache, "p", time.Minute, logger.Discard()).Fetch(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCachedSource_SourceErrorIsReturned(t *testing.T) {
	t.Parallel()

	_, c := setupRedis(t)

	src := catalogMocks.NewMockSource(t)
	src.EXPECT().Name().Return("http")
	src.EXPECT().Fetch(mock.Anything).Return(nil, catalog.ErrSourceUnavailable).Once()

	_, err := catalog.NewCachedSource(src, c, "p", time.Minute, nil).Fetch(context.Background())
	require.ErrorIs(t, err, catalog.ErrSourceUnavailable)
}

func TestStoreSource(t *testing.T) {
	t.Parallel()

	t.Run("returns stored products", func(t *testing.T) {
		t.Parallel()

		s := storeMocks.NewMockStore(t)
		s.EXPECT().AllProducts(mock.Anything).Return(sampleItems(), nil).Once()

		src := catalog.NewStoreSource(s)
		assert.Equal(t, "postgres", src.Name())

		got, err := src.Fetch(context.Background())
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("wraps store errors", func(t *testing.T) {
		t.Parallel()

		s := storeMocks.NewMockStore(t)
		s.EXPECT().AllProducts(mock.Anything).Return(nil, errors.New("db down")).Once()

		_, err := catalog.NewStoreSource(s).Fetch(context.Background())
		require.ErrorIs(t, err, catalog.ErrSourceUnavailable)
		assert.Contains(t, err.Error(), "db down")
	})
}
