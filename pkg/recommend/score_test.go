package recommend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Gorgui12/tekalis-configurator/pkg/types"
)

func gamingCriteria() domain.Criteria {
	return domain.Criteria{
		Usage:           domain.UsageGaming,
		Budget:          domain.Budget{Min: 500000, Max: 800000},
		BrandPreference: "any",
	}
}

func TestDefaultWeights(t *testing.T) {
	t.Parallel()

	w := DefaultWeights()
	assert.Equal(t, 40, w.Usage)
	assert.Equal(t, 30, w.BudgetFit)
	assert.Equal(t, 10, w.BudgetUnder)
	assert.Equal(t, 10, w.Brand)
	assert.Equal(t, 10, w.Portability)
	assert.LessOrEqual(t, w.Max(), MaxScore)
	require.NoError(t, w.Validate())
}

func TestWeights_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		weights Weights
		wantErr string
	}{
		{
			name:    "negative weight",
			weights: Weights{Usage: -1, BudgetFit: 30},
			wantErr: "weight usage must be non-negative",
		},
		{
			name:    "total above max",
			weights: Weights{Usage: 60, BudgetFit: 30, Brand: 10, Portability: 10},
			wantErr: "weights allow a score of 110",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.weights.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWeights_ValidateReportsInFieldOrder(t *testing.T) {
	t.Parallel()

	w := Weights{Usage: -1, BudgetFit: -2, BudgetUnder: -3, Brand: -4, Portability: -5}
	want := "weight usage must be non-negative (got -1)\n" +
		"weight budget_fit must be non-negative (got -2)\n" +
		"weight budget_under must be non-negative (got -3)\n" +
		"weight brand must be non-negative (got -4)\n" +
		"weight portability must be non-negative (got -5)"

	for range 20 {
		err := w.Validate()
		require.Error(t, err)
		assert.Equal(t, want, err.Error())
	}
}

func TestScore_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		criteria domain.Criteria
		item     domain.CatalogItem
		want     int
	}{
		{
			name:     "in budget gaming item with any brand",
			criteria: gamingCriteria(),
			item: domain.CatalogItem{
				ID: "a", Price: 650000, UsageTags: []domain.Usage{domain.UsageGaming},
			},
			want: 80,
		},
		{
			name:     "over budget gaming item",
			criteria: gamingCriteria(),
			item: domain.CatalogItem{
				ID:        "legion",
				Name:      "Lenovo Legion 5 Pro",
				Brand:     "Lenovo",
				Price:     1850000,
				UsageTags: []domain.Usage{domain.UsageGaming, domain.UsageCreation},
			},
			want: 50,
		},
		{
			name:     "cheaper than budget gets partial credit",
			criteria: gamingCriteria(),
			item: domain.CatalogItem{
				ID: "b", Price: 300000, UsageTags: []domain.Usage{domain.UsageGaming},
			},
			want: 60,
		},
		{
			name:     "wrong usage over budget with brand mismatch scores zero",
			criteria: domain.Criteria{Usage: domain.UsageWork, Budget: domain.Budget{Min: 100, Max: 200}, BrandPreference: "dell"},
			item: domain.CatalogItem{
				ID: "c", Brand: "Asus", Name: "ROG Strix", Price: 900, UsageTags: []domain.Usage{domain.UsageGaming},
			},
			want: 0,
		},
		{
			name: "every criterion satisfied",
			criteria: domain.Criteria{
				Usage:                 domain.UsageStudent,
				Budget:                domain.Budget{Min: 300000, Max: 600000},
				BrandPreference:       "apple",
				PortabilityPreference: domain.PortabilityVeryPortable,
			},
			item: domain.CatalogItem{
				ID: "mba", Name: "MacBook Air M2", Brand: "Apple", Price: 550000, WeightKg: 1.24,
				UsageTags: []domain.Usage{domain.UsageStudent, domain.UsageWork},
			},
			want: 90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Score(tt.criteria, tt.item))
		})
	}
}

func TestScoreBreakdown_Factors(t *testing.T) {
	t.Parallel()

	b := ScoreBreakdown(gamingCriteria(), domain.CatalogItem{
		ID: "a", Price: 650000, UsageTags: []domain.Usage{domain.UsageGaming},
	})

	assert.Equal(t, domain.Breakdown{Usage: 40, Budget: 30, Brand: 10, Portability: 0, Total: 80}, b)
}

func TestScore_BudgetBoundariesInclusive(t *testing.T) {
	t.Parallel()

	c := gamingCriteria()
	tests := []struct {
		name       string
		price      float64
		wantBudget int
	}{
		{name: "at min", price: 500000, wantBudget: 30},
		{name: "at max", price: 800000, wantBudget: 30},
		{name: "just below min", price: 499999, wantBudget: 10},
		{name: "just above max", price: 800001, wantBudget: 0},
		{name: "free item", price: 0, wantBudget: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := ScoreBreakdown(c, domain.CatalogItem{ID: "x", Price: tt.price, UsageTags: []domain.Usage{domain.UsageWork}})
			assert.Equal(t, tt.wantBudget, b.Budget)
		})
	}
}

func TestScore_BrandPreference(t *testing.T) {
	t.Parallel()

	item := domain.CatalogItem{
		ID: "x", Name: "ThinkPad X1 Carbon", Brand: "Lenovo", Price: 1,
		UsageTags: []domain.Usage{domain.UsageWork},
	}

	tests := []struct {
		name      string
		pref      string
		wantBrand int
	}{
		{name: "empty is unconstrained", pref: "", wantBrand: 10},
		{name: "any is unconstrained", pref: "any", wantBrand: 10},
		{name: "ANY with spaces is unconstrained", pref: "  ANY ", wantBrand: 10},
		{name: "brand match case insensitive", pref: "LENOVO", wantBrand: 10},
		{name: "name match", pref: "thinkpad", wantBrand: 10},
		{name: "mismatch", pref: "dell", wantBrand: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := domain.Criteria{Usage: domain.UsageWork, Budget: domain.Budget{Max: 10}, BrandPreference: tt.pref}
			assert.Equal(t, tt.wantBrand, ScoreBreakdown(c, item).Brand)
		})
	}
}

func TestScore_Portability(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pref     domain.Portability
		item     domain.CatalogItem
		wantPort int
	}{
		{
			name:     "very portable requested, 1.3kg matches",
			pref:     domain.PortabilityVeryPortable,
			item:     domain.CatalogItem{ID: "a", WeightKg: 1.3},
			wantPort: 10,
		},
		{
			name:     "very portable requested, 2.5kg is portable",
			pref:     domain.PortabilityVeryPortable,
			item:     domain.CatalogItem{ID: "b", WeightKg: 2.5},
			wantPort: 0,
		},
		{
			name:     "hyphenated preference is accepted",
			pref:     domain.Portability("very-portable"),
			item:     domain.CatalogItem{ID: "c", WeightKg: 1.1},
			wantPort: 10,
		},
		{
			name:     "explicit band wins over weight",
			pref:     domain.PortabilityDesktopReplacement,
			item:     domain.CatalogItem{ID: "d", WeightKg: 1.1, Band: domain.PortabilityDesktopReplacement},
			wantPort: 10,
		},
		{
			name:     "unset preference never contributes",
			pref:     domain.PortabilityUnknown,
			item:     domain.CatalogItem{ID: "e", WeightKg: 1.1},
			wantPort: 0,
		},
		{
			name:     "unknown weight never matches",
			pref:     domain.PortabilityPortable,
			item:     domain.CatalogItem{ID: "f"},
			wantPort: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := domain.Criteria{
				Usage:                 domain.UsageWork,
				Budget:                domain.Budget{Max: 10},
				PortabilityPreference: tt.pref,
			}
			item := tt.item
			item.UsageTags = []domain.Usage{domain.UsageWork}
			assert.Equal(t, tt.wantPort, ScoreBreakdown(c, item).Portability)
		})
	}
}

func TestScore_UsageBonusIsMonotonic(t *testing.T) {
	t.Parallel()

	c := gamingCriteria()
	tagSets := [][]domain.Usage{
		{"unlisted"},
		{domain.UsageWork},
		{domain.UsageStudent, domain.UsageMultimedia},
	}

	for _, prices := range []float64{0, 500000, 650000, 900000} {
		for _, tags := range tagSets {
			without := domain.CatalogItem{ID: "x", Price: prices, UsageTags: tags}
			with := without.Clone()
			with.UsageTags = append(with.UsageTags, domain.UsageGaming)

			before := Score(c, without)
			after := Score(c, with)
			assert.Equal(t, before+40, after, "price=%v tags=%v", prices, tags)
		}
	}
}

func TestScore_Bounds(t *testing.T) {
	t.Parallel()

	prefs := []domain.Portability{
		domain.PortabilityUnknown,
		domain.PortabilityVeryPortable,
		domain.PortabilityPortable,
		domain.PortabilityDesktopReplacement,
	}
	brands := []string{"", "any", "apple", "lenovo"}
	prices := []float64{0, 1, 499999, 500000, 650000, 800000, 800001, 1e9}
	weights := []float64{0, 1.2, 1.5, 2.5, 3.1}

	for _, p := range prefs {
		for _, brand := range brands {
			c := domain.Criteria{
				Usage:                 domain.UsageGaming,
				Budget:                domain.Budget{Min: 500000, Max: 800000},
				BrandPreference:       brand,
				PortabilityPreference: p,
			}
			for _, price := range prices {
				for _, kg := range weights {
					item := domain.CatalogItem{
						ID: "x", Brand: "Lenovo", Price: price, WeightKg: kg,
						UsageTags: []domain.Usage{domain.UsageGaming},
					}
					s := Score(c, item)
					assert.GreaterOrEqual(t, s, 0)
					assert.LessOrEqual(t, s, MaxScore)
				}
			}
		}
	}
}

func TestScore_MalformedItemScoresZero(t *testing.T) {
	t.Parallel()

	for _, price := range []float64{-1, math.NaN(), math.Inf(1)} {
		b := ScoreBreakdown(gamingCriteria(), domain.CatalogItem{
			ID: "bad", Price: price, UsageTags: []domain.Usage{domain.UsageGaming},
		})
		assert.Equal(t, 0, b.Total)
		assert.True(t, b.Malformed)
	}
}

func TestScore_MissingFieldsAreMalformed(t *testing.T) {
	t.Parallel()

	noPrice := domain.CatalogItem{ID: "no-price", Brand: "ASUS", UsageTags: []domain.Usage{domain.UsageGaming}}
	noPrice.ClearPrice()

	tests := []struct {
		name string
		item domain.CatalogItem
	}{
		{name: "price absent", item: noPrice},
		{name: "usage tags nil", item: domain.CatalogItem{ID: "nil-tags", Price: 650000}},
		{name: "usage tags empty", item: domain.CatalogItem{ID: "empty-tags", Price: 650000, UsageTags: []domain.Usage{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := ScoreBreakdown(gamingCriteria(), tt.item)
			assert.Equal(t, domain.Breakdown{Malformed: true}, b)
			assert.Equal(t, 0, Score(gamingCriteria(), tt.item))
		})
	}
}

func TestScore_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	c := domain.Criteria{
		Usage:                 "Gaming",
		Budget:                domain.Budget{Min: 1, Max: 2},
		BrandPreference:       " Dell ",
		PortabilityPreference: "very-portable",
	}
	item := domain.CatalogItem{ID: "x", UsageTags: []domain.Usage{"GAMING"}, Price: 1}

	cBefore := c
	tagsBefore := append([]domain.Usage(nil), item.UsageTags...)

	_ = Score(c, item)

	assert.Equal(t, cBefore, c)
	assert.Equal(t, tagsBefore, item.UsageTags)
}
