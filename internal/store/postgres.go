package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/Gorgui12/tekalis-configurator/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
// A non-positive poolSize uses the default.
func NewPostgresStore(ctx context.Context, connString string, poolSize int) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}
	cfg.MaxConns = int32(poolSize) //nolint:gosec // bounded by config validation

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertProducts writes every item in one transaction, preserving their order
// for newly inserted rows. It returns the number of rows written.
func (s *PostgresStore) UpsertProducts(ctx context.Context, items []domain.CatalogItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for i := range items {
			batch.Queue(queryUpsertProduct, productArgs(&items[i]))
		}
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return 0, fmt.Errorf("upserting products: %w", err)
	}

	return len(items), nil
}

// GetProduct retrieves a product by id. It returns ErrNotFound when no row
// matches.
func (s *PostgresStore) GetProduct(ctx context.Context, id string) (*domain.CatalogItem, error) {
	p := &domain.CatalogItem{}
	err := scanProduct(s.pool.QueryRow(ctx, queryGetProduct, id), p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting product %s: %w", id, err)
	}
	return p, nil
}

// ListProducts queries products with optional filters, returning results and
// total count.
func (s *PostgresStore) ListProducts(
	ctx context.Context,
	q *ProductQuery,
) ([]domain.CatalogItem, int, error) {
	if q == nil {
		q = &ProductQuery{}
	}
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting products: %w", err)
	}

	products, err := s.queryProducts(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// AllProducts returns the whole catalog in insertion order.
func (s *PostgresStore) AllProducts(ctx context.Context) ([]domain.CatalogItem, error) {
	return s.queryProducts(ctx, queryAllProducts)
}

// CountProducts returns the number of stored products.
func (s *PostgresStore) CountProducts(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, queryCountProducts).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting products: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) queryProducts(
	ctx context.Context,
	sql string,
	args ...any,
) ([]domain.CatalogItem, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	products := []domain.CatalogItem{}
	for rows.Next() {
		var p domain.CatalogItem
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}

	return products, nil
}

func productArgs(p *domain.CatalogItem) pgx.NamedArgs {
	tags := make([]string, 0, len(p.UsageTags))
	for _, u := range p.UsageTags {
		if parsed, ok := domain.ParseUsage(string(u)); ok {
			u = parsed
		}
		tags = append(tags, string(u))
	}

	specs := p.Specs
	if specs == nil {
		specs = map[string]string{}
	}

	var price *float64
	if p.HasPrice() {
		price = &p.Price
	}

	return pgx.NamedArgs{
		"id":           p.ID,
		"name":         p.Name,
		"brand":        p.Brand,
		"price":        price,
		"usage_tags":   tags,
		"weight_kg":    p.WeightKg,
		"weight_class": string(p.WeightClass()),
		"specs":        specs,
		"image_url":    p.ImageURL,
		"pros":         nonNil(p.Pros),
		"cons":         nonNil(p.Cons),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

type scannable interface {
	Scan(dest ...any) error
}

func scanProduct(row scannable, p *domain.CatalogItem) error {
	var (
		price       *float64
		tags        []string
		weightClass string
	)

	if err := row.Scan(
		&p.ID, &p.Name, &p.Brand, &price, &tags,
		&p.WeightKg, &weightClass, &p.Specs, &p.ImageURL, &p.Pros, &p.Cons,
	); err != nil {
		return err
	}

	p.UsageTags = make([]domain.Usage, len(tags))
	for i, t := range tags {
		p.UsageTags[i] = domain.Usage(t)
	}
	p.Band = domain.Portability(weightClass)
	if price != nil {
		p.Price = *price
	} else {
		p.ClearPrice()
	}

	return nil
}
