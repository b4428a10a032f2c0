package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiclient "github.com/Gorgui12/tekalis-configurator/internal/api/client"
	"github.com/Gorgui12/tekalis-configurator/internal/catalog"
	"github.com/Gorgui12/tekalis-configurator/pkg/recommend"
	domain "github.com/Gorgui12/tekalis-configurator/pkg/types"
)

const localCatalog = `products:
  - id: legion
    name: Lenovo Legion 5 Pro
    brand: Lenovo
    price: 1850000
    usage_tags: [gaming]
    weight_kg: 2.5
  - id: tuf
    name: ASUS TUF Gaming F15
    brand: ASUS
    price: 650000
    usage_tags: [gaming]
    weight_kg: 2.3
  - id: ideapad
    name: Lenovo IdeaPad 3
    brand: Lenovo
    price: 350000
    usage_tags: [student]
    weight_kg: 1.6
  - id: nitro
    name: Acer Nitro 5
    brand: Acer
    price: 780000
    usage_tags: [gaming]
    weight_kg: 2.5
`

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(localCatalog), 0o600))
	return path
}

func gaming() domain.Criteria {
	return domain.Criteria{Usage: domain.UsageGaming, Budget: domain.Budget{Min: 500000, Max: 1000000}}
}

func TestRecommendLocal(t *testing.T) {
	t.Parallel()

	src := catalog.NewFileSource(writeCatalog(t))

	tests := []struct {
		name    string
		limit   int
		wantIDs []string
	}{
		{name: "default limit", limit: 0, wantIDs: []string{"tuf", "nitro", "legion"}},
		{name: "limit above size", limit: 10, wantIDs: []string{"tuf", "nitro", "legion", "ideapad"}},
		{name: "negative", limit: -1, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			items, err := recommendLocal(context.Background(), src, gaming(), tt.limit)
			require.NoError(t, err)

			ids := make([]string, 0, len(items))
			for _, it := range items {
				ids = append(ids, it.Item.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}

	_, err := recommendLocal(context.Background(), src, domain.Criteria{Usage: "nope"}, 3)
	require.ErrorIs(t, err, recommend.ErrInvalidCriteria)

	_, err = recommendLocal(context.Background(), catalog.NewFileSource("/does/not/exist.yaml"), gaming(), 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading catalog")
}

func TestFindLocal(t *testing.T) {
	t.Parallel()

	src := catalog.NewFileSource(writeCatalog(t))

	item, err := findLocal(context.Background(), src, "ideapad")
	require.NoError(t, err)
	assert.Equal(t, "Lenovo IdeaPad 3", item.Name)
	assert.Equal(t, domain.PortabilityPortable, item.Band)

	_, err = findLocal(context.Background(), src, "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `product "missing" not found in file:catalog.yaml`)
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1 000"},
		{650000, "650 000"},
		{1850000, "1 850 000"},
		{-12500, "-12 500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatPrice(tt.in))
	}

	unpriced := domain.CatalogItem{ID: "x"}
	unpriced.ClearPrice()
	assert.Equal(t, "-", itemPrice(&unpriced))
	assert.Equal(t, "650 000", itemPrice(&domain.CatalogItem{Price: 650000}))
}

func TestPrintScoredTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := printScoredTable(&buf, []domain.ScoredItem{
		{
			Item: domain.CatalogItem{
				ID: "tuf", Name: "ASUS TUF Gaming F15", Brand: "ASUS", Price: 650000,
				UsageTags: []domain.Usage{domain.UsageGaming}, WeightKg: 2.3,
			},
			Score: 80,
		},
		{
			Item:  domain.CatalogItem{ID: "x", Name: "A very long product name that keeps going on", Price: 1},
			Score: 0,
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "SCORE")
	assert.Contains(t, out, "650 000")
	assert.Contains(t, out, "portable")
	assert.Contains(t, out, "A very long product name that...")
}

func TestPrintBreakdown(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	item := domain.CatalogItem{ID: "bad", Name: "Broken"}
	require.NoError(t, printBreakdown(&buf, &item, domain.Breakdown{Malformed: true}))
	assert.Contains(t, buf.String(), "Score:")
	assert.Contains(t, buf.String(), "0/100")
	assert.Contains(t, buf.String(), "malformed")
}

// The commands below share the global root command and viper state, so they
// run serially.

func runCLI(t *testing.T, server string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--server", server, "--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRecommendCommand_Server(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/recommendations", r.URL.Path)
		_ = json.NewEncoder(w).Encode(apiclient.RecommendResponse{
			Items: []domain.ScoredItem{{Item: domain.CatalogItem{ID: "tuf", Name: "TUF", Price: 650000}, Score: 80}},
			Total: 1,
		})
	}))
	defer srv.Close()

	out, err := runCLI(t, srv.URL, "recommend", "--usage", "gaming", "--max", "1000000")
	require.NoError(t, err)
	assert.Contains(t, out, "tuf")
	assert.Contains(t, out, "80")
}

func TestCatalogGetCommand_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":404,"detail":"catalog item not found"}`))
	}))
	defer srv.Close()

	_, err := runCLI(t, srv.URL, "catalog", "get", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `product "nope" not found`)
}
