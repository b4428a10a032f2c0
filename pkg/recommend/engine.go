package recommend

import (
	"errors"
	"fmt"
	"sort"

	domain "github.com/Gorgui12/tekalis-configurator/pkg/types"
)

// DefaultLimit is the number of recommendations returned when the caller
// does not ask for a specific count.
const DefaultLimit = 3

// ErrInvalidCriteria is returned when the criteria cannot be scored.
var ErrInvalidCriteria = errors.New("invalid criteria")

// Engine ranks catalogs with a fixed set of weights. The zero value is not
// usable; create one with New. An Engine holds no mutable state and is safe
// for concurrent use.
type Engine struct {
	weights Weights
}

// Option configures an Engine.
type Option func(*Engine)

// WithWeights overrides the default scoring weights.
func WithWeights(w Weights) Option {
	return func(e *Engine) {
		e.weights = w
	}
}

// New creates an Engine using the default weights unless overridden.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{weights: DefaultWeights()}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.weights.Validate(); err != nil {
		return nil, fmt.Errorf("validating weights: %w", err)
	}
	return e, nil
}

// Weights returns the weights the engine scores with.
func (e *Engine) Weights() Weights {
	return e.weights
}

// Recommend ranks the catalog for the criteria with the default weights and
// returns at most limit items.
func Recommend(c domain.Criteria, catalog []domain.CatalogItem, limit int) ([]domain.ScoredItem, error) {
	e := &Engine{weights: DefaultWeights()}
	return e.Recommend(c, catalog, limit)
}

// Score computes one item's breakdown for the criteria.
func (e *Engine) Score(c domain.Criteria, item domain.CatalogItem) domain.Breakdown {
	return scoreWith(c.Normalized(), &item, e.weights)
}

// Recommend validates the criteria, scores every catalog item, and returns
// the best min(limit, len(catalog)) items sorted by descending score. Items
// with equal scores keep their catalog order. Neither argument is modified.
func (e *Engine) Recommend(
	c domain.Criteria,
	catalog []domain.CatalogItem,
	limit int,
) ([]domain.ScoredItem, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCriteria, err)
	}

	if limit <= 0 || len(catalog) == 0 {
		return []domain.ScoredItem{}, nil
	}

	norm := c.Normalized()
	scored := make([]domain.ScoredItem, len(catalog))
	for i := range catalog {
		b := scoreWith(norm, &catalog[i], e.weights)
		scored[i] = domain.ScoredItem{
			Item:      catalog[i].Clone(),
			Score:     b.Total,
			Breakdown: b,
		}
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score > scored[b].Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	return scored, nil
}
