package handlers_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	catalogMocks "github.com/Gorgui12/tekalis-configurator/internal/catalog/mocks"
	"github.com/Gorgui12/tekalis-configurator/internal/engine"
	"github.com/Gorgui12/tekalis-configurator/pkg/logger"
	domain "github.com/Gorgui12/tekalis-configurator/pkg/types"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testCatalog() []domain.CatalogItem {
	return []domain.CatalogItem{
		{
			ID: "legion", Name: "Lenovo Legion 5 Pro", Brand: "Lenovo", Price: 1850000,
			UsageTags: []domain.Usage{domain.UsageGaming}, WeightKg: 2.5,
		},
		{
			ID: "tuf", Name: "ASUS TUF Gaming F15", Brand: "ASUS", Price: 650000,
			UsageTags: []domain.Usage{domain.UsageGaming}, WeightKg: 2.3,
		},
		{
			ID: "ideapad", Name: "Lenovo IdeaPad 3", Brand: "Lenovo", Price: 350000,
			UsageTags: []domain.Usage{domain.UsageStudent}, WeightKg: 1.6,
		},
		{
			ID: "nitro", Name: "Acer Nitro 5", Brand: "Acer", Price: 780000,
			UsageTags: []domain.Usage{domain.UsageGaming}, WeightKg: 2.5,
		},
	}
}

// newEngine returns an engine over a mock source serving items. The catalog
// is loaded only when load is true.
func newEngine(t *testing.T, items []domain.CatalogItem, load bool) *engine.Engine {
	t.Helper()

	src := catalogMocks.NewMockSource(t)
	src.EXPECT().Name().Return("test").Maybe()
	src.EXPECT().Fetch(mock.Anything).Return(items, nil).Maybe()

	eng, err := engine.NewEngine(src,
		engine.WithLogger(logger.Discard()),
		engine.WithNowFunc(func() time.Time { return fixedNow }),
	)
	require.NoError(t, err)

	if load {
		_, err = eng.Refresh(context.Background())
		require.NoError(t, err)
	}
	return eng
}
