// Package store defines the datastore abstraction for the product catalog.
// Business logic depends on the Store interface, never on concrete
// implementations, so catalog loading can be tested with mocks.
package store

import (
	"context"
	"errors"

	domain "github.com/Gorgui12/tekalis-configurator/pkg/types"
)

// ErrNotFound is returned when a product does not exist.
var ErrNotFound = errors.New("product not found")

// ProductQuery defines optional filters for product listings.
type ProductQuery struct {
	Usage       *string
	Brand       *string // matched against brand or name, case-insensitive
	WeightClass *string
	MinPrice    *float64
	MaxPrice    *float64
	Search      *string
	Limit       int // default 50
	Offset      int
	OrderBy     string // "catalog", "price", "name", "updated_at"
}

// Store defines all data access operations for the product catalog.
type Store interface {
	UpsertProducts(ctx context.Context, items []domain.CatalogItem) (int, error)
	GetProduct(ctx context.Context, id string) (*domain.CatalogItem, error)
	ListProducts(ctx context.Context, q *ProductQuery) ([]domain.CatalogItem, int, error)
	AllProducts(ctx context.Context) ([]domain.CatalogItem, error)
	CountProducts(ctx context.Context) (int, error)

	Ping(ctx context.Context) error
	Migrate(ctx context.Context) error
}
