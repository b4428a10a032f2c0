package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// LastRefresh returns a stat panel showing time since the last successful
// catalog refresh.
func LastRefresh() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Last Refresh").
		Description("Time since the catalog was last loaded successfully").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`time() - configurator_catalog_last_refresh_timestamp_seconds{job=%q}`, Job),
			"", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(1800, 3600)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// MalformedItems returns a stat panel showing malformed products in the
// active snapshot.
func MalformedItems() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Malformed Products").
		Description("Products in the active snapshot that cannot be scored").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(fmt.Sprintf(`max(configurator_catalog_malformed_items{job=%q})`, Job), "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// RefreshDuration returns a timeseries panel showing the p95 catalog
// refresh duration.
func RefreshDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Refresh Duration (p95)").
		Description("95th percentile catalog refresh duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(Quantile(0.95, "configurator_catalog_refresh_duration_seconds"), "p95", "A")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RefreshErrors returns a timeseries panel showing failed refreshes per
// minute.
func RefreshErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Refresh Errors / min").
		Description("Rate of failed catalog refreshes per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`configurator:catalog_refresh_errors:rate5m * 60`, "errors/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RemoteRequests returns a timeseries panel showing requests to a remote
// storefront catalog by HTTP status.
func RemoteRequests() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Remote Catalog Requests").
		Description("Requests made to the storefront catalog, by status").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`sum(rate(configurator_remote_catalog_requests_total{job=%q}[5m])) by (status)`, Job),
			"{{status}}", "A",
		)).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RateLimitWait returns a timeseries panel showing p95 time spent waiting
// on the remote catalog rate limiter.
func RateLimitWait() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Rate Limit Wait (p95)").
		Description("Time refreshes spent waiting for a remote catalog token").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(Quantile(0.95, "configurator_remote_catalog_rate_limit_wait_seconds"), "p95", "A")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
