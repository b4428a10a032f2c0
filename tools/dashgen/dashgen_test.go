package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Gorgui12/tekalis-configurator/tools/dashgen/dashboards"
	"github.com/Gorgui12/tekalis-configurator/tools/dashgen/rules"
	"github.com/Gorgui12/tekalis-configurator/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	builder := dashboards.BuildOverview()
	dash, err := builder.Build()
	require.NoError(t, err)

	require.NotNil(t, dash.Uid)
	assert.Equal(t, "configurator-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "Configurator Overview", *dash.Title)

	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	assert.Len(t, dash.Panels, 5)

	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 19, totalPanels)

	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "configurator-recording-rules", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "configurator-recording", group.Name)
	require.Len(t, group.Rules, 6)

	for _, rule := range cr.Rules() {
		assert.True(t, KnownMetrics[rule.Record], "recording rule %s missing from KnownMetrics", rule.Record)
		assert.Empty(t, rule.Alert)
	}
	assert.Equal(t, "system-rules-prometheus", cr.Metadata.Labels["prometheus"])

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)

	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "configurator-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	require.Len(t, group.Rules, 8)

	expectedAlerts := []string{
		"ConfiguratorDown",
		"ConfiguratorNotReady",
		"ConfiguratorHighErrorRate",
		"ConfiguratorRecommendationErrors",
		"ConfiguratorCatalogRefreshFailing",
		"ConfiguratorCatalogStale",
		"ConfiguratorMalformedProducts",
		"ConfiguratorCacheErrors",
	}
	severities := map[string]bool{
		rules.SeverityCritical: true,
		rules.SeverityWarning:  true,
		rules.SeverityInfo:     true,
	}
	for i, rule := range cr.Rules() {
		assert.Equal(t, expectedAlerts[i], rule.Alert)
		assert.True(t, severities[rule.Labels["severity"]], "alert %s has unknown severity", rule.Alert)
		assert.NotEmpty(t, rule.Labels["severity"], "alert %s missing severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
}

func TestRun_WritesArtifacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.OutputDir = dir
	require.NoError(t, run(cfg, false))

	for _, path := range []string{
		filepath.Join("grafana", "data", "configurator-overview.json"),
		filepath.Join("prometheus", "configurator-recording-rules.yaml"),
		filepath.Join("prometheus", "configurator-alerts.yaml"),
	} {
		data, err := os.ReadFile(filepath.Join(dir, path))
		require.NoError(t, err, path)
		assert.NotEmpty(t, data, path)
	}

	alerts, err := os.ReadFile(filepath.Join(dir, "prometheus", "configurator-alerts.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(alerts), generatedHeader)
}

func TestRun_ValidateOnlyWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := Config{OutputDir: dir, RulesEnabled: true}
	require.NoError(t, run(cfg, true))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
