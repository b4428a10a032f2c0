package client

import (
	"context"
	"time"

	domain "github.com/Gorgui12/tekalis-configurator/pkg/types"
)

// RecommendResponse is the server's ranked answer.
type RecommendResponse struct {
	Items       []domain.ScoredItem `json:"items"`
	Total       int                 `json:"total"`
	CatalogSize int                 `json:"catalog_size"`
	Source      string              `json:"source"`
	GeneratedAt time.Time           `json:"generated_at"`
}

// ScoreResponse is the score of a single item.
type ScoreResponse struct {
	Score     int              `json:"score"`
	Breakdown domain.Breakdown `json:"breakdown"`
}

// Recommend asks the server for the best catalog matches. A zero limit
// leaves the choice to the server.
func (c *Client) Recommend(
	ctx context.Context,
	criteria domain.Criteria,
	limit int,
) (*RecommendResponse, error) {
	body := map[string]any{"criteria": criteria}
	if limit != 0 {
		body["limit"] = limit
	}

	var resp RecommendResponse
	if err := c.post(ctx, "/api/v1/recommendations", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Score asks the server to score one item.
func (c *Client) Score(
	ctx context.Context,
	criteria domain.Criteria,
	item domain.CatalogItem,
) (*ScoreResponse, error) {
	body := map[string]any{"criteria": criteria, "item": item}

	var resp ScoreResponse
	if err := c.post(ctx, "/api/v1/score", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
