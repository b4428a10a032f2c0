// Package recommend scores catalog items against a shopper's criteria and
// ranks a catalog into a short list of recommendations.
package recommend

import (
	"errors"
	"fmt"
	"strings"

	domain "github.com/Gorgui12/tekalis-configurator/pkg/types"
)

// MaxScore is the upper bound of any score.
const MaxScore = 100

// Weights defines the points awarded by each scoring factor.
type Weights struct {
	Usage       int `json:"usage"        yaml:"usage"`
	BudgetFit   int `json:"budget_fit"   yaml:"budget_fit"`
	BudgetUnder int `json:"budget_under" yaml:"budget_under"`
	Brand       int `json:"brand"        yaml:"brand"`
	Portability int `json:"portability"  yaml:"portability"`
}

// DefaultWeights returns the default scoring weights.
func DefaultWeights() Weights {
	return Weights{
		Usage:       40,
		BudgetFit:   30,
		BudgetUnder: 10,
		Brand:       10,
		Portability: 10,
	}
}

// Max returns the best score these weights can produce.
func (w Weights) Max() int {
	return w.Usage + max(w.BudgetFit, w.BudgetUnder) + w.Brand + w.Portability
}

// Validate checks that no weight is negative and the best score fits in
// [0, MaxScore].
func (w Weights) Validate() error {
	var errs []error
	for _, f := range []struct {
		name  string
		value int
	}{
		{"usage", w.Usage},
		{"budget_fit", w.BudgetFit},
		{"budget_under", w.BudgetUnder},
		{"brand", w.Brand},
		{"portability", w.Portability},
	} {
		if f.value < 0 {
			errs = append(errs, fmt.Errorf("weight %s must be non-negative (got %d)", f.name, f.value))
		}
	}
	if w.Max() > MaxScore {
		errs = append(errs, fmt.Errorf("weights allow a score of %d, above %d", w.Max(), MaxScore))
	}
	return errors.Join(errs...)
}

// Score computes the compatibility score of one item for the criteria using
// the default weights.
func Score(c domain.Criteria, item domain.CatalogItem) int {
	return ScoreBreakdown(c, item).Total
}

// ScoreBreakdown computes the per-factor contributions of one item for the
// criteria using the default weights.
func ScoreBreakdown(c domain.Criteria, item domain.CatalogItem) domain.Breakdown {
	return scoreWith(c.Normalized(), &item, DefaultWeights())
}

// scoreWith expects normalized criteria.
func scoreWith(c domain.Criteria, item *domain.CatalogItem, w Weights) domain.Breakdown {
	if item.Malformed() {
		return domain.Breakdown{Malformed: true}
	}

	b := domain.Breakdown{
		Usage:       usageScore(c, item, w),
		Budget:      budgetScore(c.Budget, item.Price, w),
		Brand:       brandScore(c, item, w),
		Portability: portabilityScore(c.PortabilityPreference, item, w),
	}

	b.Total = b.Usage + b.Budget + b.Brand + b.Portability
	if b.Total > MaxScore {
		b.Total = MaxScore
	}
	if b.Total < 0 {
		b.Total = 0
	}

	return b
}

// usageScore rewards items tagged for the requested usage.
func usageScore(c domain.Criteria, item *domain.CatalogItem, w Weights) int {
	if c.Usage != "" && item.HasUsage(c.Usage) {
		return w.Usage
	}
	return 0
}

// budgetScore gives full credit inside the range and partial credit for
// items cheaper than the minimum.
func budgetScore(b domain.Budget, price float64, w Weights) int {
	switch {
	case b.Contains(price):
		return w.BudgetFit
	case price < float64(b.Min):
		return w.BudgetUnder
	default:
		return 0
	}
}

// brandScore rewards any item when no brand was asked for, otherwise items
// whose brand or name mentions the requested token.
func brandScore(c domain.Criteria, item *domain.CatalogItem, w Weights) int {
	token := c.BrandToken()
	if token == "" {
		return w.Brand
	}
	if strings.Contains(strings.ToLower(item.Brand), token) ||
		strings.Contains(strings.ToLower(item.Name), token) {
		return w.Brand
	}
	return 0
}

// portabilityScore only contributes when a band was requested.
func portabilityScore(want domain.Portability, item *domain.CatalogItem, w Weights) int {
	if want == domain.PortabilityUnknown {
		return 0
	}
	if item.WeightClass() == want {
		return w.Portability
	}
	return 0
}
