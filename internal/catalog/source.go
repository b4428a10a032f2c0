// Package catalog loads the product catalog the recommendation engine ranks.
// Catalogs come from a Source (embedded demo data, a file, Postgres or a
// remote REST endpoint), optionally fronted by a Redis cache, and are
// normalized once at load time into an immutable Snapshot.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gorgui12/tekalis-configurator/internal/store"
	domain "github.com/Gorgui12/tekalis-configurator/pkg/types"
)

var (
	// ErrNoSnapshot is returned before the first successful load.
	ErrNoSnapshot = errors.New("catalog not loaded")

	// ErrSourceUnavailable wraps failures to reach a catalog source.
	ErrSourceUnavailable = errors.New("catalog source unavailable")
)

// Source produces the full list of catalog items.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.CatalogItem, error)
}

// Invalidator is implemented by sources that keep a copy of the catalog and
// can drop it so the next Fetch reads through.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// StoreSource reads the catalog from the product store.
type StoreSource struct {
	store store.Store
}

// NewStoreSource returns a Source backed by s.
func NewStoreSource(s store.Store) *StoreSource {
	return &StoreSource{store: s}
}

// Name implements Source.
func (s *StoreSource) Name() string { return "postgres" }

// Fetch implements Source.
func (s *StoreSource) Fetch(ctx context.Context) ([]domain.CatalogItem, error) {
	items, err := s.store.AllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return items, nil
}
