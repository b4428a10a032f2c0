package client

import (
	"context"
	"net/url"
	"strconv"
	"time"

	domain "github.com/Gorgui12/tekalis-configurator/pkg/types"
)

// CatalogResponse wraps a page of catalog items.
type CatalogResponse struct {
	Items    []domain.CatalogItem `json:"items"`
	Total    int                  `json:"total"`
	Limit    int                  `json:"limit"`
	Offset   int                  `json:"offset"`
	Source   string               `json:"source"`
	LoadedAt time.Time            `json:"loaded_at"`
}

// ListCatalogParams defines query parameters for catalog listing.
type ListCatalogParams struct {
	Usage       string
	Brand       string
	WeightClass string
	MinPrice    int64
	MaxPrice    int64
	Search      string
	Limit       int
	Offset      int
}

// RefreshResponse reports the outcome of a catalog reload.
type RefreshResponse struct {
	Source     string    `json:"source"`
	Items      int       `json:"items"`
	Malformed  int       `json:"malformed"`
	Duplicates int       `json:"duplicates"`
	MissingID  int       `json:"missing_id"`
	LoadedAt   time.Time `json:"loaded_at"`
	DurationMs int64     `json:"duration_ms"`
}

// ListCatalog returns catalog items matching the given parameters.
func (c *Client) ListCatalog(
	ctx context.Context,
	params *ListCatalogParams,
) (*CatalogResponse, error) {
	q := url.Values{}
	if params != nil {
		if params.Usage != "" {
			q.Set("usage", params.Usage)
		}
		if params.Brand != "" {
			q.Set("brand", params.Brand)
		}
		if params.WeightClass != "" {
			q.Set("weight_class", params.WeightClass)
		}
		if params.MinPrice > 0 {
			q.Set("min_price", strconv.FormatInt(params.MinPrice, 10))
		}
		if params.MaxPrice > 0 {
			q.Set("max_price", strconv.FormatInt(params.MaxPrice, 10))
		}
		if params.Search != "" {
			q.Set("q", params.Search)
		}
		if params.Limit > 0 {
			q.Set("limit", strconv.Itoa(params.Limit))
		}
		if params.Offset > 0 {
			q.Set("offset", strconv.Itoa(params.Offset))
		}
	}

	path := "/api/v1/catalog"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp CatalogResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetCatalogItem returns a single catalog item by ID.
func (c *Client) GetCatalogItem(ctx context.Context, id string) (*domain.CatalogItem, error) {
	var item domain.CatalogItem
	if err := c.get(ctx, "/api/v1/catalog/"+url.PathEscape(id), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// RefreshCatalog asks the server to reload its catalog.
func (c *Client) RefreshCatalog(ctx context.Context) (*RefreshResponse, error) {
	var resp RefreshResponse
	if err := c.post(ctx, "/api/v1/catalog/refresh", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
