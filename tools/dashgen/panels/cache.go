package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CacheHitRatio returns a stat panel showing the share of catalog reads
// served from Redis.
func CacheHitRatio() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Cache Hit Ratio").
		Description("Share of catalog fetches served from the Redis cache").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`configurator:cache_hit_ratio:rate5m * 100`, "", "A")).
		Unit("percent").
		Thresholds(ThresholdsRedGreen(50)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// CacheOperations returns a timeseries panel showing cache hits, misses,
// and errors.
func CacheOperations() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Cache Operations").
		Description("Catalog cache hits, misses and errors per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(fmt.Sprintf(`sum(rate(configurator_cache_hits_total{job=%q}[5m]))`, Job), "hits", "A")).
		WithTarget(PromQuery(fmt.Sprintf(`sum(rate(configurator_cache_misses_total{job=%q}[5m]))`, Job), "misses", "B")).
		WithTarget(PromQuery(fmt.Sprintf(`sum(rate(configurator_cache_errors_total{job=%q}[5m]))`, Job), "errors", "C")).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
