package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RecommendationRate returns a timeseries panel showing recommendations
// served per second, split by usage category.
func RecommendationRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Recommendations / s").
		Description("Recommendation requests served per second, by usage").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			fmt.Sprintf(`sum(rate(configurator_recommendations_total{job=%q}[5m])) by (usage)`, Job),
			"{{usage}}", "A",
		)).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RankingLatency returns a timeseries panel showing p50 and p95 time spent
// ranking the catalog.
func RankingLatency() *timeseries.PanelBuilder {
	const metric = "configurator_recommendation_duration_seconds"
	return timeseries.NewPanelBuilder().
		Title("Ranking Latency").
		Description("Time spent scoring and sorting the catalog for one request").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(Quantile(0.50, metric), "p50", "A")).
		WithTarget(PromQuery(Quantile(0.95, metric), "p95", "B")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RecommendationErrors returns a timeseries panel showing failed
// recommendation requests by reason.
func RecommendationErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Recommendation Errors").
		Description("Failed recommendation requests per second, by reason").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			fmt.Sprintf(`sum(rate(configurator_recommendation_errors_total{job=%q}[5m])) by (reason)`, Job),
			"{{reason}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ScoreDistribution returns a bar gauge panel showing how recommended
// products scored across histogram buckets.
func ScoreDistribution() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Score Distribution").
		Description(fmt.Sprintf("Distribution of recommended product scores (0-%d)", MaxScore)).
		Datasource(DSRef()).
		Height(TSHeight).
		Span(FullWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`sum(increase(configurator_score_distribution_bucket{job=%q}[1h])) by (le)`, Job),
			"{{le}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}
