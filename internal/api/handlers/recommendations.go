package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Gorgui12/tekalis-configurator/internal/catalog"
	"github.com/Gorgui12/tekalis-configurator/internal/engine"
	"github.com/Gorgui12/tekalis-configurator/pkg/recommend"
	domain "github.com/Gorgui12/tekalis-configurator/pkg/types"
)

// Recommender ranks the catalog for shopper criteria.
type Recommender interface {
	Recommend(ctx context.Context, c domain.Criteria, limit int) (*engine.Result, error)
	Score(c domain.Criteria, item domain.CatalogItem) (domain.Breakdown, error)
}

// RecommendationsHandler serves recommendation and scoring requests.
type RecommendationsHandler struct {
	rec Recommender
}

// NewRecommendationsHandler creates a new RecommendationsHandler.
func NewRecommendationsHandler(r Recommender) *RecommendationsHandler {
	return &RecommendationsHandler{rec: r}
}

// --- Input/Output types ---

// RecommendInput is the request body for the recommendations endpoint.
type RecommendInput struct {
	Body struct {
		Criteria domain.Criteria `json:"criteria" doc:"What the shopper is looking for"`
		Limit    int             `json:"limit,omitempty" doc:"Maximum results; 0 or omitted uses the server default" example:"3"`
	}
}

// RecommendOutput is the response for the recommendations endpoint.
type RecommendOutput struct {
	Body struct {
		Items       []domain.ScoredItem `json:"items"        doc:"Best matches, highest score first"`
		Total       int                 `json:"total"        doc:"Number of items returned"`
		CatalogSize int                 `json:"catalog_size" doc:"Number of items considered"`
		Source      string              `json:"source"       doc:"Catalog source the snapshot came from"`
		GeneratedAt time.Time           `json:"generated_at"`
	}
}

// ScoreInput is the request body for the score endpoint.
type ScoreInput struct {
	Body struct {
		Criteria domain.Criteria    `json:"criteria"`
		Item     domain.CatalogItem `json:"item"`
	}
}

// ScoreOutput is the response for the score endpoint.
type ScoreOutput struct {
	Body struct {
		Score     int              `json:"score" minimum:"0" maximum:"100"`
		Breakdown domain.Breakdown `json:"breakdown"`
	}
}

// --- Handlers ---

// Recommend ranks the current catalog for the posted criteria.
func (h *RecommendationsHandler) Recommend(
	ctx context.Context,
	input *RecommendInput,
) (*RecommendOutput, error) {
	if err := input.Body.Criteria.Validate(); err != nil {
		return nil, huma.Error400BadRequest("invalid criteria", splitErrors(err)...)
	}

	res, err := h.rec.Recommend(ctx, input.Body.Criteria, input.Body.Limit)
	if err != nil {
		return nil, recommendError(err)
	}

	resp := &RecommendOutput{}
	resp.Body.Items = res.Items
	resp.Body.Total = len(res.Items)
	resp.Body.CatalogSize = res.CatalogSize
	resp.Body.Source = res.Source
	resp.Body.GeneratedAt = res.GeneratedAt

	return resp, nil
}

// Score scores one posted item without touching the catalog.
func (h *RecommendationsHandler) Score(
	_ context.Context,
	input *ScoreInput,
) (*ScoreOutput, error) {
	if err := input.Body.Criteria.Validate(); err != nil {
		return nil, huma.Error400BadRequest("invalid criteria", splitErrors(err)...)
	}

	b, err := h.rec.Score(input.Body.Criteria, input.Body.Item)
	if err != nil {
		return nil, recommendError(err)
	}

	resp := &ScoreOutput{}
	resp.Body.Score = b.Total
	resp.Body.Breakdown = b
	return resp, nil
}

func recommendError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrNoSnapshot):
		return huma.Error503ServiceUnavailable("catalog not loaded yet")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return huma.Error503ServiceUnavailable("request cancelled")
	case errors.Is(err, recommend.ErrInvalidCriteria):
		return huma.Error400BadRequest("invalid criteria", splitErrors(err)...)
	default:
		return huma.Error500InternalServerError("recommendation failed: " + err.Error())
	}
}

// RegisterRecommendationRoutes registers recommendation endpoints with the Huma API.
func RegisterRecommendationRoutes(api huma.API, h *RecommendationsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "recommend",
		Method:      http.MethodPost,
		Path:        "/api/v1/recommendations",
		Summary:     "Recommend products",
		Description: "Scores every catalog item against the criteria and returns the best matches. " +
			"Items with equal scores keep their catalog order.",
		Tags:   []string{"recommendations"},
		Errors: []int{http.StatusBadRequest, http.StatusServiceUnavailable},
	}, h.Recommend)

	huma.Register(api, huma.Operation{
		OperationID: "score-item",
		Method:      http.MethodPost,
		Path:        "/api/v1/score",
		Summary:     "Score one item",
		Description: "Returns the compatibility score of a single item with its per-factor breakdown.",
		Tags:        []string{"recommendations"},
		Errors:      []int{http.StatusBadRequest},
	}, h.Score)
}
