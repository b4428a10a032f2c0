package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gorgui12/tekalis-configurator/internal/api/handlers"
	"github.com/Gorgui12/tekalis-configurator/internal/engine"
	domain "github.com/Gorgui12/tekalis-configurator/pkg/types"
)

func gamingBody(limit int) map[string]any {
	body := map[string]any{
		"criteria": map[string]any{
			"usage":  "gaming",
			"budget": map[string]any{"min": 500000, "max": 1000000},
		},
	}
	if limit != 0 {
		body["limit"] = limit
	}
	return body
}

func TestRecommendationsHandler_Recommend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		load       bool
		body       any
		wantStatus int
		wantIDs    []string
		wantBody   string
	}{
		{
			name:       "default limit",
			load:       true,
			body:       gamingBody(0),
			wantStatus: http.StatusOK,
			wantIDs:    []string{"tuf", "nitro", "legion"},
		},
		{
			name:       "explicit limit",
			load:       true,
			body:       gamingBody(1),
			wantStatus: http.StatusOK,
			wantIDs:    []string{"tuf"},
		},
		{
			name:       "negative limit returns nothing",
			load:       true,
			body:       gamingBody(-2),
			wantStatus: http.StatusOK,
			wantIDs:    []string{},
		},
		{
			name: "invalid criteria returns 400 with every problem",
			load: true,
			body: map[string]any{
				"criteria": map[string]any{
					"usage":  "dancing",
					"budget": map[string]any{"min": 900, "max": 100},
				},
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "must not exceed budget.max",
		},
		{
			name:       "missing criteria returns 422",
			load:       true,
			body:       map[string]any{"limit": 3},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "criteria",
		},
		{
			name:       "catalog not loaded returns 503",
			load:       false,
			body:       gamingBody(0),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "catalog not loaded",
		},
		{
			name:       "invalid JSON returns 400",
			load:       true,
			body:       strings.NewReader(`not json`),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := handlers.NewRecommendationsHandler(newEngine(t, testCatalog(), tt.load))

			_, api := humatest.New(t)
			handlers.RegisterRecommendationRoutes(api, h)

			resp := api.Post("/api/v1/recommendations", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
			if tt.wantIDs == nil {
				return
			}

			var out struct {
				Items       []domain.ScoredItem `json:"items"`
				Total       int                 `json:"total"`
				CatalogSize int                 `json:"catalog_size"`
				Source      string              `json:"source"`
			}
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))

			ids := make([]string, 0, len(out.Items))
			for _, it := range out.Items {
				ids = append(ids, it.Item.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, len(tt.wantIDs), out.Total)
			assert.Equal(t, 4, out.CatalogSize)
			assert.Equal(t, "test", out.Source)
		})
	}
}

func TestRecommendationsHandler_RecommendScores(t *testing.T) {
	t.Parallel()

	h := handlers.NewRecommendationsHandler(newEngine(t, testCatalog(), true))
	_, api := humatest.New(t)
	handlers.RegisterRecommendationRoutes(api, h)

	resp := api.Post("/api/v1/recommendations", gamingBody(3))
	require.Equal(t, http.StatusOK, resp.Code)

	var out struct {
		Items []domain.ScoredItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.Len(t, out.Items, 3)

	for i := 1; i < len(out.Items); i++ {
		assert.GreaterOrEqual(t, out.Items[i-1].Score, out.Items[i].Score)
	}
	assert.Equal(t, 80, out.Items[0].Score)
	assert.Equal(t, 40, out.Items[0].Breakdown.Usage)
	assert.Equal(t, 30, out.Items[0].Breakdown.Budget)
	assert.Equal(t, 10, out.Items[0].Breakdown.Brand)
}

type failingRecommender struct{}

func (failingRecommender) Recommend(context.Context, domain.Criteria, int) (*engine.Result, error) {
	return nil, errors.New("boom")
}

func (failingRecommender) Score(domain.Criteria, domain.CatalogItem) (domain.Breakdown, error) {
	return domain.Breakdown{}, errors.New("boom")
}

func TestRecommendationsHandler_InternalError(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	handlers.RegisterRecommendationRoutes(api, handlers.NewRecommendationsHandler(failingRecommender{}))

	resp := api.Post("/api/v1/recommendations", gamingBody(0))
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "recommendation failed")
}

func TestRecommendationsHandler_Score(t *testing.T) {
	t.Parallel()

	item := map[string]any{
		"id":         "mba",
		"name":       "Apple MacBook Air M2",
		"brand":      "Apple",
		"price":      850000,
		"usage_tags": []string{"student", "work"},
		"weight_kg":  1.24,
	}

	tests := []struct {
		name       string
		criteria   map[string]any
		wantStatus int
		want       domain.Breakdown
		wantBody   string
	}{
		{
			name: "full match",
			criteria: map[string]any{
				"usage":                  "student",
				"budget":                 map[string]any{"min": 500000, "max": 900000},
				"brand_preference":       "apple",
				"portability_preference": "very-portable",
			},
			wantStatus: http.StatusOK,
			want:       domain.Breakdown{Usage: 40, Budget: 30, Brand: 10, Portability: 10, Total: 90},
		},
		{
			name: "over budget other brand",
			criteria: map[string]any{
				"usage":            "gaming",
				"budget":           map[string]any{"min": 100000, "max": 400000},
				"brand_preference": "lenovo",
			},
			wantStatus: http.StatusOK,
			want:       domain.Breakdown{},
		},
		{
			name: "unknown portability returns 400",
			criteria: map[string]any{
				"usage":                  "work",
				"budget":                 map[string]any{"min": 0, "max": 1},
				"portability_preference": "featherweight",
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "portability_preference",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := handlers.NewRecommendationsHandler(newEngine(t, nil, false))
			_, api := humatest.New(t)
			handlers.RegisterRecommendationRoutes(api, h)

			resp := api.Post("/api/v1/score", map[string]any{"criteria": tt.criteria, "item": item})
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
				return
			}

			var out struct {
				Score     int              `json:"score"`
				Breakdown domain.Breakdown `json:"breakdown"`
			}
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
			assert.Equal(t, tt.want, out.Breakdown)
			assert.Equal(t, tt.want.Total, out.Score)
		})
	}
}

func TestRecommendationsHandler_ScoreIncompleteItem(t *testing.T) {
	t.Parallel()

	criteria := map[string]any{
		"usage":  "gaming",
		"budget": map[string]any{"min": 500000, "max": 800000},
	}

	tests := []struct {
		name string
		item map[string]any
	}{
		{
			name: "no price",
			item: map[string]any{"id": "a", "name": "A", "brand": "ASUS", "usage_tags": []string{"gaming"}},
		},
		{
			name: "null price",
			item: map[string]any{"id": "a", "name": "A", "brand": "ASUS", "price": nil, "usage_tags": []string{"gaming"}},
		},
		{
			name: "no usage tags",
			item: map[string]any{"id": "a", "name": "A", "brand": "ASUS", "price": 650000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := handlers.NewRecommendationsHandler(newEngine(t, nil, false))
			_, api := humatest.New(t)
			handlers.RegisterRecommendationRoutes(api, h)

			resp := api.Post("/api/v1/score", map[string]any{"criteria": criteria, "item": tt.item})
			require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

			var out struct {
				Score     int              `json:"score"`
				Breakdown domain.Breakdown `json:"breakdown"`
			}
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
			assert.Equal(t, 0, out.Score)
			assert.Equal(t, domain.Breakdown{Malformed: true}, out.Breakdown)
		})
	}
}
