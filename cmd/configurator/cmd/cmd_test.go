package cmd

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Gorgui12/tekalis-configurator/internal/catalog"
	catalogMocks "github.com/Gorgui12/tekalis-configurator/internal/catalog/mocks"
	"github.com/Gorgui12/tekalis-configurator/internal/config"
	"github.com/Gorgui12/tekalis-configurator/internal/engine"
	storeMocks "github.com/Gorgui12/tekalis-configurator/internal/store/mocks"
	"github.com/Gorgui12/tekalis-configurator/pkg/logger"
	domain "github.com/Gorgui12/tekalis-configurator/pkg/types"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, config.SourceEmbedded, cfg.Catalog.Source)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog:\n  source: file\n  path: catalog.yaml\n"), 0o600))

	cfg, err = loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config.SourceFile, cfg.Catalog.Source)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := versionCommand()
	c.SetOut(&out)
	require.NoError(t, c.Execute())
	assert.Equal(t, "configurator dev\n", out.String())
}

func TestBuildSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(file, []byte(`[{"id":"a","name":"A","price":1}]`), 0o600))

	tests := []struct {
		name     string
		mutate   func(*config.Config)
		wantName string
	}{
		{
			name:     "embedded",
			mutate:   func(*config.Config) {},
			wantName: "embedded",
		},
		{
			name: "file",
			mutate: func(c *config.Config) {
				c.Catalog.Source = config.SourceFile
				c.Catalog.Path = file
			},
			wantName: "file:catalog.json",
		},
		{
			name: "http",
			mutate: func(c *config.Config) {
				c.Catalog.Source = config.SourceHTTP
				c.Catalog.URL = "http://catalog.invalid/products"
			},
			wantName: "http",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.Default()
			tt.mutate(cfg)

			b, err := buildSource(context.Background(), cfg, logger.Discard())
			require.NoError(t, err)
			defer b.Close()

			assert.Equal(t, tt.wantName, b.source.Name())
			assert.Nil(t, b.store)
		})
	}

	t.Run("unknown source", func(t *testing.T) {
		t.Parallel()

		cfg := config.Default()
		cfg.Catalog.Source = "ftp"
		_, err := buildSource(context.Background(), cfg, logger.Discard())
		require.Error(t, err)
	})
}

func TestBuildSource_WithRedisCache(t *testing.T) {
	t.Parallel()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := config.Default()
	cfg.Cache.Enabled = true
	cfg.Cache.Addr = mr.Addr()
	cfg.Cache.KeyPrefix = "test"

	b, err := buildSource(context.Background(), cfg, logger.Discard())
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, "embedded+redis", b.source.Name())

	items, err := b.source.Fetch(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, items)
	assert.True(t, mr.Exists("test:catalog:embedded"))
}

func TestSeed(t *testing.T) {
	t.Parallel()

	t.Run("normalizes and upserts", func(t *testing.T) {
		t.Parallel()

		src := catalogMocks.NewMockSource(t)
		src.EXPECT().Name().Return("file:catalog.yaml")
		src.EXPECT().Fetch(mock.Anything).Return([]domain.CatalogItem{
			{ID: "a", Name: "A", Price: 1, WeightKg: 1.2},
			{ID: "a", Name: "dup", Price: 2},
			{ID: " ", Name: "no id", Price: 3},
		}, nil).Once()

		s := storeMocks.NewMockStore(t)
		s.EXPECT().
			UpsertProducts(mock.Anything, mock.MatchedBy(func(items []domain.CatalogItem) bool {
				return len(items) == 1 && items[0].ID == "a" && items[0].Band == domain.PortabilityVeryPortable
			})).
			Return(1, nil).
			Once()

		n, err := seed(context.Background(), src, s, logger.Discard())
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("source error", func(t *testing.T) {
		t.Parallel()

		src := catalogMocks.NewMockSource(t)
		src.EXPECT().Fetch(mock.Anything).Return(nil, errors.New("no such file")).Once()

		_, err := seed(context.Background(), src, storeMocks.NewMockStore(t), logger.Discard())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading catalog")
	})

	t.Run("store error", func(t *testing.T) {
		t.Parallel()

		src := catalogMocks.NewMockSource(t)
		src.EXPECT().Fetch(mock.Anything).Return([]domain.CatalogItem{{ID: "a", Price: 1}}, nil).Once()

		s := storeMocks.NewMockStore(t)
		s.EXPECT().UpsertProducts(mock.Anything, mock.Anything).Return(0, errors.New("db down")).Once()

		_, err := seed(context.Background(), src, s, logger.Discard())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "upserting products")
	})
}

func TestNewServer(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	eng, err := engine.NewEngine(catalog.NewEmbeddedSource(), engine.WithLogger(logger.Discard()))
	require.NoError(t, err)

	e := newServer(cfg, eng, nil, logger.Discard())

	serve := func(method, path, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, path, http.NoBody)
		} else {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, serve(http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(http.MethodGet, "/readyz", "").Code)

	_, err = eng.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, serve(http.MethodGet, "/readyz", "").Code)

	rec := serve(http.MethodPost, "/api/v1/recommendations",
		`{"criteria":{"usage":"gaming","budget":{"min":500000,"max":1000000}}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"total":3`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = serve(http.MethodGet, "/api/v1/catalog/dell-xps-13", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(http.MethodGet, "/openapi.json", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/v1/recommendations")

	rec = serve(http.MethodGet, "/swagger/index.html", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "configurator_catalog_items")
}
