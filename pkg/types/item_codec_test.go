package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCatalogItem_UnmarshalJSON_Price(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		doc       string
		wantPrice bool
		want      float64
	}{
		{name: "price set", doc: `{"id":"a","price":650000,"usage_tags":["gaming"]}`, wantPrice: true, want: 650000},
		{name: "zero price is still a price", doc: `{"id":"a","price":0,"usage_tags":["gaming"]}`, wantPrice: true},
		{name: "price missing", doc: `{"id":"a","usage_tags":["gaming"]}`},
		{name: "price null", doc: `{"id":"a","price":null,"usage_tags":["gaming"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var item CatalogItem
			require.NoError(t, json.Unmarshal([]byte(tt.doc), &item))
			assert.Equal(t, "a", item.ID)
			assert.Equal(t, []Usage{UsageGaming}, item.UsageTags)
			assert.Equal(t, tt.wantPrice, item.HasPrice())
			assert.Equal(t, tt.want, item.Price)
			assert.Equal(t, !tt.wantPrice, item.Malformed())
		})
	}
}

func TestCatalogItem_UnmarshalYAML_Price(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		doc       string
		wantPrice bool
	}{
		{name: "price set", doc: "id: a\nprice: 650000\nusage_tags: [gaming]\n", wantPrice: true},
		{name: "price missing", doc: "id: a\nusage_tags: [gaming]\n"},
		{name: "price tilde", doc: "id: a\nprice: ~\nusage_tags: [gaming]\n"},
		{name: "price empty", doc: "id: a\nprice:\nusage_tags: [gaming]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var item CatalogItem
			require.NoError(t, yaml.Unmarshal([]byte(tt.doc), &item))
			assert.Equal(t, "a", item.ID)
			assert.Equal(t, tt.wantPrice, item.HasPrice())
		})
	}
}

func TestCatalogItem_JSONRoundTripKeepsMissingPrice(t *testing.T) {
	t.Parallel()

	priced := CatalogItem{ID: "a", Price: 650000, UsageTags: []Usage{UsageGaming}}
	unpriced := CatalogItem{ID: "b", UsageTags: []Usage{UsageGaming}}
	unpriced.ClearPrice()

	data, err := json.Marshal([]CatalogItem{priced, unpriced})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"price":650000`)
	assert.Contains(t, string(data), `"price":null`)

	var got []CatalogItem
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 2)
	assert.Equal(t, priced, got[0])
	assert.Equal(t, unpriced, got[1])
	assert.False(t, got[1].HasPrice())
}
