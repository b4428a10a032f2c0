package main

import "errors"

// KnownMetrics is the set of metric names exported by the configurator plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"configurator_http_request_duration_seconds": true,
	"configurator_http_requests_total":           true,

	// Health metrics.
	"configurator_healthz_up": true,
	"configurator_readyz_up":  true,

	// Recommendation metrics.
	"configurator_recommendations_total":           true,
	"configurator_recommendation_errors_total":     true,
	"configurator_recommendation_duration_seconds": true,
	"configurator_score_distribution":              true,

	// Catalog metrics.
	"configurator_catalog_items":                          true,
	"configurator_catalog_malformed_items":                true,
	"configurator_malformed_items_total":                  true,
	"configurator_catalog_refresh_duration_seconds":       true,
	"configurator_catalog_refresh_errors_total":           true,
	"configurator_catalog_last_refresh_timestamp_seconds": true,

	// Cache metrics.
	"configurator_cache_hits_total":   true,
	"configurator_cache_misses_total": true,
	"configurator_cache_errors_total": true,

	// Remote catalog metrics.
	"configurator_remote_catalog_requests_total":          true,
	"configurator_remote_catalog_rate_limit_wait_seconds": true,

	// Recording rules.
	"configurator:http_requests:rate5m":          true,
	"configurator:http_errors:rate5m":            true,
	"configurator:recommendations:rate5m":        true,
	"configurator:recommendation_errors:rate5m":  true,
	"configurator:catalog_refresh_errors:rate5m": true,
	"configurator:cache_hit_ratio:rate5m":        true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
