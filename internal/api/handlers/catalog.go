package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Gorgui12/tekalis-configurator/internal/catalog"
	"github.com/Gorgui12/tekalis-configurator/internal/engine"
	"github.com/Gorgui12/tekalis-configurator/internal/store"
	domain "github.com/Gorgui12/tekalis-configurator/pkg/types"
)

const defaultCatalogPageSize = 50

// CatalogProvider exposes the loaded catalog and reloads it on demand.
type CatalogProvider interface {
	Catalog() (*catalog.Snapshot, error)
	Reload(ctx context.Context) (*engine.RefreshResult, error)
}

// ProductReader reads live product rows. store.Store satisfies it.
type ProductReader interface {
	ListProducts(ctx context.Context, q *store.ProductQuery) ([]domain.CatalogItem, int, error)
	GetProduct(ctx context.Context, id string) (*domain.CatalogItem, error)
}

// CatalogHandler serves the catalog browsing and refresh endpoints.
type CatalogHandler struct {
	provider CatalogProvider
	products ProductReader
	now      func() time.Time
}

// NewCatalogHandler creates a new CatalogHandler. When products is non-nil,
// browsing reads the product table directly so edits show up before the next
// refresh; otherwise it reads the loaded snapshot.
func NewCatalogHandler(p CatalogProvider, products ProductReader) *CatalogHandler {
	return &CatalogHandler{provider: p, products: products, now: time.Now}
}

// --- Input/Output types ---

// ListCatalogInput is the input for listing catalog items.
type ListCatalogInput struct {
	Usage       string `query:"usage"        doc:"Filter by usage tag"                       example:"gaming"`
	Brand       string `query:"brand"        doc:"Case-insensitive brand or name substring"  example:"lenovo"`
	WeightClass string `query:"weight_class" doc:"Filter by portability band"                example:"very_portable"`
	MinPrice    int64  `query:"min_price"    doc:"Lowest price, inclusive; 0 is unbounded"   minimum:"0"`
	MaxPrice    int64  `query:"max_price"    doc:"Highest price, inclusive; 0 is unbounded"  minimum:"0"`
	Search      string `query:"q"            doc:"Case-insensitive name substring"           example:"legion"`
	Limit       int    `query:"limit"        doc:"Number of results (default 50)"            minimum:"0" maximum:"500"`
	Offset      int    `query:"offset"       doc:"Pagination offset"                         minimum:"0"`
}

// ListCatalogOutput is the response for listing catalog items.
type ListCatalogOutput struct {
	Body struct {
		Items    []domain.CatalogItem `json:"items"`
		Total    int                  `json:"total"`
		Limit    int                  `json:"limit"`
		Offset   int                  `json:"offset"`
		Source   string               `json:"source"`
		LoadedAt time.Time            `json:"loaded_at"`
	}
}

// GetCatalogItemInput is the input for getting a single catalog item.
type GetCatalogItemInput struct {
	ID string `path:"id" doc:"Catalog item ID" example:"dell-xps-13"`
}

// GetCatalogItemOutput is the response for getting a single catalog item.
type GetCatalogItemOutput struct {
	Body domain.CatalogItem
}

// RefreshCatalogOutput is the response for the catalog refresh endpoint.
type RefreshCatalogOutput struct {
	Body struct {
		Source     string    `json:"source"`
		Items      int       `json:"items"       doc:"Items in the new snapshot"`
		Malformed  int       `json:"malformed"   doc:"Items kept but unscorable"`
		Duplicates int       `json:"duplicates"  doc:"Entries dropped for a repeated id"`
		MissingID  int       `json:"missing_id"  doc:"Entries dropped for an empty id"`
		LoadedAt   time.Time `json:"loaded_at"`
		DurationMs int64     `json:"duration_ms"`
	}
}

// --- Handlers ---

// ListCatalog returns catalog items in catalog order with optional filters.
func (h *CatalogHandler) ListCatalog(
	ctx context.Context,
	input *ListCatalogInput,
) (*ListCatalogOutput, error) {
	q, err := catalogQuery(input)
	if err != nil {
		return nil, err
	}

	if h.products != nil {
		return h.listProducts(ctx, q)
	}

	snap, err := h.provider.Catalog()
	if err != nil {
		return nil, catalogError(err)
	}

	items, total := snap.List(q)

	resp := &ListCatalogOutput{}
	resp.Body.Items = items
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset
	resp.Body.Source = snap.Source
	resp.Body.LoadedAt = snap.LoadedAt

	return resp, nil
}

func (h *CatalogHandler) listProducts(ctx context.Context, q catalog.Query) (*ListCatalogOutput, error) {
	items, total, err := h.products.ListProducts(ctx, productQuery(q))
	if err != nil {
		return nil, huma.Error503ServiceUnavailable("reading products: " + err.Error())
	}

	resp := &ListCatalogOutput{}
	resp.Body.Items = items
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset
	resp.Body.Source = productsSource
	resp.Body.LoadedAt = h.now().UTC()

	return resp, nil
}

// productsSource names listings read straight from the product table.
const productsSource = "postgres"

// catalogQuery validates the listing filters and applies the page default.
func catalogQuery(input *ListCatalogInput) (catalog.Query, error) {
	q := catalog.Query{
		Brand:    strings.TrimSpace(input.Brand),
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
		Search:   strings.TrimSpace(input.Search),
		Limit:    input.Limit,
		Offset:   input.Offset,
	}
	if strings.EqualFold(q.Brand, domain.AnyBrand) {
		q.Brand = ""
	}
	if q.Limit == 0 {
		q.Limit = defaultCatalogPageSize
	}

	if input.Usage != "" {
		u, ok := domain.ParseUsage(input.Usage)
		if !ok {
			return q, huma.Error400BadRequest("unknown usage " + input.Usage)
		}
		q.Usage = u
	}

	if input.WeightClass != "" {
		band, ok := domain.ParsePortability(input.WeightClass)
		if !ok {
			return q, huma.Error400BadRequest("unknown weight_class " + input.WeightClass)
		}
		q.WeightClass = band
	}

	if q.MaxPrice > 0 && q.MinPrice > q.MaxPrice {
		return q, huma.Error400BadRequest("min_price must not exceed max_price")
	}

	return q, nil
}

func productQuery(q catalog.Query) *store.ProductQuery {
	pq := &store.ProductQuery{Limit: q.Limit, Offset: q.Offset}
	if q.Usage != "" {
		usage := string(q.Usage)
		pq.Usage = &usage
	}
	if q.Brand != "" {
		pq.Brand = &q.Brand
	}
	if q.WeightClass != "" {
		band := string(q.WeightClass)
		pq.WeightClass = &band
	}
	if q.MinPrice > 0 {
		lo := float64(q.MinPrice)
		pq.MinPrice = &lo
	}
	if q.MaxPrice > 0 {
		hi := float64(q.MaxPrice)
		pq.MaxPrice = &hi
	}
	if q.Search != "" {
		pq.Search = &q.Search
	}
	return pq
}

// GetCatalogItem returns a single catalog item by ID.
func (h *CatalogHandler) GetCatalogItem(
	ctx context.Context,
	input *GetCatalogItemInput,
) (*GetCatalogItemOutput, error) {
	if h.products != nil {
		item, err := h.products.GetProduct(ctx, input.ID)
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("catalog item not found")
		}
		if err != nil {
			return nil, huma.Error503ServiceUnavailable("reading product: " + err.Error())
		}
		return &GetCatalogItemOutput{Body: *item}, nil
	}

	snap, err := h.provider.Catalog()
	if err != nil {
		return nil, catalogError(err)
	}

	item, ok := snap.Find(input.ID)
	if !ok {
		return nil, huma.Error404NotFound("catalog item not found")
	}

	return &GetCatalogItemOutput{Body: item}, nil
}

// RefreshCatalog reloads the catalog from its source, bypassing any cache.
func (h *CatalogHandler) RefreshCatalog(
	ctx context.Context,
	_ *struct{},
) (*RefreshCatalogOutput, error) {
	res, err := h.provider.Reload(ctx)
	if err != nil {
		if errors.Is(err, catalog.ErrSourceUnavailable) {
			return nil, huma.Error502BadGateway("catalog source unavailable: " + err.Error())
		}
		return nil, huma.Error500InternalServerError("catalog refresh failed: " + err.Error())
	}

	resp := &RefreshCatalogOutput{}
	resp.Body.Source = res.Source
	resp.Body.Items = res.Stats.Kept
	resp.Body.Malformed = res.Stats.Malformed
	resp.Body.Duplicates = res.Stats.Duplicates
	resp.Body.MissingID = res.Stats.MissingID
	resp.Body.LoadedAt = res.LoadedAt
	resp.Body.DurationMs = res.Duration.Milliseconds()

	return resp, nil
}

func catalogError(err error) error {
	if errors.Is(err, catalog.ErrNoSnapshot) {
		return huma.Error503ServiceUnavailable("catalog not loaded yet")
	}
	return huma.Error500InternalServerError("reading catalog: " + err.Error())
}

// RegisterCatalogRoutes registers catalog endpoints with the Huma API.
func RegisterCatalogRoutes(api huma.API, h *CatalogHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-catalog",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog",
		Summary:     "List catalog items",
		Description: "Returns catalog items in catalog order with optional filters. " +
			"With a Postgres catalog the listing reads the product table directly.",
		Tags:        []string{"catalog"},
		Errors:      []int{http.StatusBadRequest, http.StatusServiceUnavailable},
	}, h.ListCatalog)

	huma.Register(api, huma.Operation{
		OperationID: "get-catalog-item",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog/{id}",
		Summary:     "Get a catalog item by ID",
		Tags:        []string{"catalog"},
		Errors:      []int{http.StatusNotFound, http.StatusServiceUnavailable},
	}, h.GetCatalogItem)

	huma.Register(api, huma.Operation{
		OperationID: "refresh-catalog",
		Method:      http.MethodPost,
		Path:        "/api/v1/catalog/refresh",
		Summary:     "Reload the catalog",
		Description: "Drops any cached copy and reloads the catalog from its configured source.",
		Tags:        []string{"catalog"},
		Errors:      []int{http.StatusBadGateway, http.StatusInternalServerError},
	}, h.RefreshCatalog)
}
