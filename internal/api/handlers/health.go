package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Gorgui12/tekalis-configurator/internal/store"
)

// ReadinessChecker reports whether the service can answer requests.
type ReadinessChecker interface {
	Ready() bool
}

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	ready ReadinessChecker
	store store.Store
}

// NewHealthHandler creates a new HealthHandler. s may be nil when the
// catalog is not backed by Postgres.
func NewHealthHandler(r ReadinessChecker, s store.Store) *HealthHandler {
	return &HealthHandler{ready: r, store: s}
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// ReadyResponse is the readiness body. Products is the stored product
// count and is only set when the catalog is backed by Postgres.
type ReadyResponse struct {
	Status   string `json:"status"`
	Products *int   `json:"products,omitempty"`
}

// Readyz returns 200 once a catalog snapshot is loaded and the database, if
// any, is reachable. It returns 503 otherwise.
func (h *HealthHandler) Readyz(c echo.Context) error {
	if !h.ready.Ready() {
		return c.JSON(http.StatusServiceUnavailable, ReadyResponse{Status: "catalog not loaded"})
	}
	if h.store == nil {
		return c.JSON(http.StatusOK, ReadyResponse{Status: "ready"})
	}

	ctx := c.Request().Context()
	if err := h.store.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, ReadyResponse{Status: "unavailable"})
	}
	n, err := h.store.CountProducts(ctx)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, ReadyResponse{Status: "unavailable"})
	}
	return c.JSON(http.StatusOK, ReadyResponse{Status: "ready", Products: &n})
}

// RegisterHealthRoutes mounts the health endpoints directly on echo so they
// stay out of the OpenAPI document.
func RegisterHealthRoutes(e *echo.Echo, h *HealthHandler) {
	e.GET("/healthz", h.Healthz)
	e.GET("/readyz", h.Readyz)
}
