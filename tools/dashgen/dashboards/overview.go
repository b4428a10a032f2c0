// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/Gorgui12/tekalis-configurator/tools/dashgen/panels"
)

// BuildOverview constructs the Configurator Overview dashboard with all
// metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Configurator Overview").
		Uid("configurator-overview").
		Tags([]string{"configurator", "recommendations"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.CatalogItemsStat()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Recommendations.
	b.WithRow(dashboard.NewRowBuilder("Recommendations").
		WithPanel(panels.RecommendationRate()).
		WithPanel(panels.RankingLatency()).
		WithPanel(panels.RecommendationErrors()).
		WithPanel(panels.ScoreDistribution()))

	// Row 4: Catalog.
	b.WithRow(dashboard.NewRowBuilder("Catalog").
		WithPanel(panels.LastRefresh()).
		WithPanel(panels.MalformedItems()).
		WithPanel(panels.RefreshDuration()).
		WithPanel(panels.RefreshErrors()).
		WithPanel(panels.RemoteRequests()).
		WithPanel(panels.RateLimitWait()))

	// Row 5: Cache.
	b.WithRow(dashboard.NewRowBuilder("Cache").
		WithPanel(panels.CacheHitRatio()).
		WithPanel(panels.CacheOperations()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
