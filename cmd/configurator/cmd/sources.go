package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Gorgui12/tekalis-configurator/internal/catalog"
	"github.com/Gorgui12/tekalis-configurator/internal/config"
	"github.com/Gorgui12/tekalis-configurator/internal/store"
	"github.com/Gorgui12/tekalis-configurator/pkg/logger"
)

// backends holds what buildSource opened so the caller can close it.
type backends struct {
	source catalog.Source
	store  *store.PostgresStore
	closer []func()
}

func (b *backends) Close() {
	for i := len(b.closer) - 1; i >= 0; i-- {
		b.closer[i]()
	}
}

// buildSource opens the catalog source named by the config and, when the
// cache is enabled, wraps it in the Redis read-through cache.
func buildSource(ctx context.Context, cfg *config.Config, log *slog.Logger) (*backends, error) {
	b := &backends{}

	switch cfg.Catalog.Source {
	case config.SourceEmbedded:
		b.source = catalog.NewEmbeddedSource()
	case config.SourceFile:
		b.source = catalog.NewFileSource(cfg.Catalog.Path)
	case config.SourceHTTP:
		b.source = catalog.NewHTTPSource(cfg.Catalog.URL,
			catalog.WithHTTPClient(&http.Client{Timeout: cfg.Catalog.Timeout}),
			catalog.WithHeaders(cfg.Catalog.Headers),
			catalog.WithRateLimit(cfg.Catalog.RateLimit.PerSecond, cfg.Catalog.RateLimit.Burst),
			catalog.WithHTTPLogger(logger.Component(log, "catalog-http")),
		)
	case config.SourcePostgres:
		s, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), cfg.Database.PoolSize)
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		b.store = s
		b.closer = append(b.closer, s.Close)
		b.source = catalog.NewStoreSource(s)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}

	if cfg.Cache.Enabled {
		client := catalog.NewRedisClient(cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB)
		b.closer = append(b.closer, func() { _ = client.Close() })

		cache := catalog.NewRedisCache(client)
		if err := cache.Ping(ctx); err != nil {
			// The cached source falls back to the origin on every cache
			// error, so an unreachable Redis only costs latency.
			log.Warn("redis cache unreachable", "addr", cfg.Cache.Addr, "error", err)
		}
		b.source = catalog.NewCachedSource(
			b.source, cache, cfg.Cache.KeyPrefix, cfg.Cache.TTL,
			logger.Component(log, "catalog-cache"),
		)
	}

	return b, nil
}
