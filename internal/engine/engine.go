// Package engine hosts the recommendation engine behind the server: it keeps
// the current catalog snapshot, refreshes it from the configured source, and
// ranks it for incoming criteria.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Gorgui12/tekalis-configurator/internal/catalog"
	"github.com/Gorgui12/tekalis-configurator/internal/metrics"
	"github.com/Gorgui12/tekalis-configurator/pkg/recommend"
	domain "github.com/Gorgui12/tekalis-configurator/pkg/types"
)

const defaultMaxLimit = 50

// Result is the ranked answer to one recommendation request.
type Result struct {
	Items       []domain.ScoredItem
	CatalogSize int
	Source      string
	GeneratedAt time.Time
}

// RefreshResult summarizes a catalog refresh.
type RefreshResult struct {
	Source   string
	Stats    catalog.NormalizeStats
	LoadedAt time.Time
	Duration time.Duration
}

// Engine serves recommendations over the latest catalog snapshot.
type Engine struct {
	source catalog.Source
	holder *catalog.Holder
	ranker *recommend.Engine
	log    *slog.Logger

	weights      recommend.Weights
	defaultLimit int
	maxLimit     int
	now          func() time.Time

	refreshMu sync.Mutex
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithWeights overrides the scoring weights.
func WithWeights(w recommend.Weights) EngineOption {
	return func(e *Engine) {
		e.weights = w
	}
}

// WithDefaultLimit sets the number of results returned when a request does
// not specify one.
func WithDefaultLimit(n int) EngineOption {
	return func(e *Engine) {
		e.defaultLimit = n
	}
}

// WithMaxLimit caps the number of results any request can ask for.
func WithMaxLimit(n int) EngineOption {
	return func(e *Engine) {
		e.maxLimit = n
	}
}

// WithNowFunc overrides the clock for testing.
func WithNowFunc(f func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = f
	}
}

// NewEngine creates an Engine reading from src. No catalog is loaded until
// Refresh succeeds.
func NewEngine(src catalog.Source, opts ...EngineOption) (*Engine, error) {
	eng := &Engine{
		source:       src,
		holder:       catalog.NewHolder(),
		log:          slog.Default(),
		weights:      recommend.DefaultWeights(),
		defaultLimit: recommend.DefaultLimit,
		maxLimit:     defaultMaxLimit,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.defaultLimit < 1 {
		return nil, fmt.Errorf("default limit must be positive (got %d)", eng.defaultLimit)
	}
	if eng.maxLimit < eng.defaultLimit {
		return nil, fmt.Errorf("max limit %d is below default limit %d", eng.maxLimit, eng.defaultLimit)
	}

	ranker, err := recommend.New(recommend.WithWeights(eng.weights))
	if err != nil {
		return nil, err
	}
	eng.ranker = ranker

	return eng, nil
}

// Refresh loads the catalog from the source, normalizes it, and publishes a
// new snapshot. On failure the previous snapshot stays in place.
func (eng *Engine) Refresh(ctx context.Context) (*RefreshResult, error) {
	eng.refreshMu.Lock()
	defer eng.refreshMu.Unlock()

	start := time.Now()
	name := eng.source.Name()

	raw, err := eng.source.Fetch(ctx)
	if err != nil {
		metrics.CatalogRefreshErrorsTotal.WithLabelValues(name).Inc()
		return nil, fmt.Errorf("fetching catalog from %s: %w", name, err)
	}

	items, stats := catalog.Normalize(raw)
	loadedAt := eng.now()
	eng.holder.Set(catalog.NewSnapshot(items, name, stats, loadedAt))

	elapsed := time.Since(start)
	metrics.CatalogRefreshDuration.Observe(elapsed.Seconds())
	metrics.CatalogItems.Set(float64(stats.Kept))
	metrics.CatalogMalformedItems.Set(float64(stats.Malformed))
	metrics.MalformedItemsTotal.Add(float64(stats.Malformed))
	metrics.CatalogLastRefreshTimestamp.Set(float64(loadedAt.Unix()))

	if stats.Malformed > 0 || stats.Duplicates > 0 || stats.MissingID > 0 {
		eng.log.Warn("catalog contains unusable entries",
			"source", name,
			"malformed", stats.Malformed,
			"duplicates", stats.Duplicates,
			"missing_id", stats.MissingID,
		)
	}
	eng.log.Info("catalog refreshed",
		"source", name,
		"items", stats.Kept,
		"duration_ms", elapsed.Milliseconds(),
	)

	return &RefreshResult{
		Source:   name,
		Stats:    stats,
		LoadedAt: loadedAt,
		Duration: elapsed,
	}, nil
}

// Reload drops any cached copy held by the source, then refreshes.
func (eng *Engine) Reload(ctx context.Context) (*RefreshResult, error) {
	if inv, ok := eng.source.(catalog.Invalidator); ok {
		if err := inv.Invalidate(ctx); err != nil {
			eng.log.Warn("invalidating catalog cache failed", "error", err)
		}
	}
	return eng.Refresh(ctx)
}

// Recommend ranks the current snapshot for c. A limit of 0 means the default
// limit; limits above the maximum are capped; negative limits yield an empty
// result.
func (eng *Engine) Recommend(ctx context.Context, c domain.Criteria, limit int) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap, err := eng.holder.Get()
	if err != nil {
		metrics.RecommendationErrorsTotal.WithLabelValues("no_catalog").Inc()
		return nil, err
	}

	start := time.Now()
	items, err := eng.ranker.Recommend(c, snap.Items, eng.EffectiveLimit(limit))
	if err != nil {
		if errors.Is(err, recommend.ErrInvalidCriteria) {
			metrics.RecommendationErrorsTotal.WithLabelValues("invalid_criteria").Inc()
		} else {
			metrics.RecommendationErrorsTotal.WithLabelValues("internal").Inc()
		}
		return nil, err
	}
	metrics.RecommendationDuration.Observe(time.Since(start).Seconds())

	norm := c.Normalized()
	metrics.RecommendationsTotal.WithLabelValues(string(norm.Usage)).Inc()
	for i := range items {
		metrics.ScoreDistribution.Observe(float64(items[i].Score))
	}

	eng.log.Debug("recommendation served",
		"usage", norm.Usage,
		"budget_min", norm.Budget.Min,
		"budget_max", norm.Budget.Max,
		"results", len(items),
		"catalog_size", snap.Len(),
	)

	return &Result{
		Items:       items,
		CatalogSize: snap.Len(),
		Source:      snap.Source,
		GeneratedAt: eng.now(),
	}, nil
}

// Score validates c and scores a single item with the engine's weights.
func (eng *Engine) Score(c domain.Criteria, item domain.CatalogItem) (domain.Breakdown, error) {
	if err := c.Validate(); err != nil {
		return domain.Breakdown{}, fmt.Errorf("%w: %w", recommend.ErrInvalidCriteria, err)
	}
	return eng.ranker.Score(c, item), nil
}

// EffectiveLimit resolves a requested limit against the configured default
// and maximum.
func (eng *Engine) EffectiveLimit(limit int) int {
	switch {
	case limit == 0:
		return eng.defaultLimit
	case limit > eng.maxLimit:
		return eng.maxLimit
	default:
		return limit
	}
}

// Catalog returns the current snapshot.
func (eng *Engine) Catalog() (*catalog.Snapshot, error) {
	return eng.holder.Get()
}

// Ready reports whether a catalog snapshot has been loaded.
func (eng *Engine) Ready() bool {
	_, err := eng.holder.Get()
	return err == nil
}

// SourceName returns the name of the configured catalog source.
func (eng *Engine) SourceName() string {
	return eng.source.Name()
}

// Weights returns the weights in use.
func (eng *Engine) Weights() recommend.Weights {
	return eng.weights
}
