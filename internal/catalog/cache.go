package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Gorgui12/tekalis-configurator/internal/metrics"
	domain "github.com/Gorgui12/tekalis-configurator/pkg/types"
)

// Cache stores whole catalog documents under a key.
type Cache interface {
	Get(ctx context.Context, key string) ([]domain.CatalogItem, bool, error)
	Set(ctx context.Context, key string, items []domain.CatalogItem, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// RedisCache implements Cache with JSON values in Redis.
type RedisCache struct {
	client redis.UniversalClient
}

// NewRedisCache wraps an existing client.
func NewRedisCache(client redis.UniversalClient) *RedisCache {
	return &RedisCache{client: client}
}

// NewRedisClient dials Redis with the timeouts used for catalog caching.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})
}

// Ping tests the Redis connection.
func (c *RedisCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Get implements Cache. A missing key is a miss, not an error.
func (c *RedisCache) Get(ctx context.Context, key string) ([]domain.CatalogItem, bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cache key %s: %w", key, err)
	}

	var items []domain.CatalogItem
	if err := json.Unmarshal(val, &items); err != nil {
		return nil, false, fmt.Errorf("decoding cached catalog: %w", err)
	}
	return items, true, nil
}

// Set implements Cache.
func (c *RedisCache) Set(ctx context.Context, key string, items []domain.CatalogItem, ttl time.Duration) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding catalog for cache: %w", err)
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("writing cache key %s: %w", key, err)
	}
	return nil
}

// Delete implements Cache.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("deleting cache key %s: %w", key, err)
	}
	return nil
}

// CachedSource reads through a Cache in front of a slower Source. Cache
// failures are logged and counted, then the wrapped source is used.
type CachedSource struct {
	src   Source
	cache Cache
	key   string
	ttl   time.Duration
	log   *slog.Logger
}

// NewCachedSource wraps src. Entries live for ttl under
// "<prefix>:catalog:<source name>".
func NewCachedSource(src Source, cache Cache, prefix string, ttl time.Duration, log *slog.Logger) *CachedSource {
	if log == nil {
		log = slog.Default()
	}
	return &CachedSource{
		src:   src,
		cache: cache,
		key:   prefix + ":catalog:" + src.Name(),
		ttl:   ttl,
		log:   log,
	}
}

// Name implements Source.
func (s *CachedSource) Name() string { return s.src.Name() + "+redis" }

// Key returns the cache key in use.
func (s *CachedSource) Key() string { return s.key }

// Fetch implements Source.
func (s *CachedSource) Fetch(ctx context.Context) ([]domain.CatalogItem, error) {
	items, ok, err := s.cache.Get(ctx, s.key)
	switch {
	case err != nil:
		metrics.CacheErrorsTotal.Inc()
		s.log.Warn("catalog cache read failed", "key", s.key, "error", err)
	case ok:
		metrics.CacheHitsTotal.Inc()
		return items, nil
	default:
		metrics.CacheMissesTotal.Inc()
	}

	items, err = s.src.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, s.key, items, s.ttl); err != nil {
		metrics.CacheErrorsTotal.Inc()
		s.log.Warn("catalog cache write failed", "key", s.key, "error", err)
	}

	return items, nil
}

// Invalidate implements Invalidator.
func (s *CachedSource) Invalidate(ctx context.Context) error {
	return s.cache.Delete(ctx, s.key)
}
