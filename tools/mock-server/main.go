// Package main implements a mock storefront catalog server for local
// development. It serves a canned product list from a JSON fixture so the
// configurator's http catalog source can be exercised without a real shop.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

type catalogResponse struct {
	Products []json.RawMessage `json:"products"`
}

type productSummary struct {
	Name      string   `json:"name"`
	Brand     string   `json:"brand"`
	UsageTags []string `json:"usage_tags"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/catalog_response.json", "path to catalog fixture")
	token := flag.String("token", "", "require this bearer token when set")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "products", len(fixture.Products))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/products", productsHandler(logger, fixture, *token))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock catalog server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*catalogResponse, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var resp catalogResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &resp, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

// productsHandler returns the fixture, optionally narrowed by the brand and
// usage query parameters. Filtering lets local setups simulate a storefront
// whose assortment differs from the demo catalog.
func productsHandler(logger *slog.Logger, fixture *catalogResponse, token string) http.HandlerFunc {
	type indexedProduct struct {
		raw   json.RawMessage
		brand string
		usage []string
	}
	products := make([]indexedProduct, 0, len(fixture.Products))
	for _, raw := range fixture.Products {
		var s productSummary
		//nolint:errcheck,gosec // fixture data is trusted; extraction is best-effort
		json.Unmarshal(raw, &s)
		products = append(products, indexedProduct{
			raw:   raw,
			brand: strings.ToLower(s.Brand + " " + s.Name),
			usage: s.UsageTags,
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if token != "" && r.Header.Get("Authorization") != "Bearer "+token {
			logger.Warn("products request with missing or wrong token")
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"error": "unauthorized",
			})
			return
		}

		brand := strings.ToLower(r.URL.Query().Get("brand"))
		usage := strings.ToLower(r.URL.Query().Get("usage"))

		matched := make([]json.RawMessage, 0, len(products))
		for _, p := range products {
			if brand != "" && !strings.Contains(p.brand, brand) {
				continue
			}
			if usage != "" && !hasTag(p.usage, usage) {
				continue
			}
			matched = append(matched, p.raw)
		}

		writeJSON(w, http.StatusOK, catalogResponse{Products: matched})
		logger.Info("products", "brand", brand, "usage", usage, "returned", len(matched))
	}
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}
