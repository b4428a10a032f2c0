package rules

// RecordingRules returns the pre-computed rates shared by the dashboard and
// the alert rules.
func RecordingRules() PrometheusRule {
	return newPrometheusRule("configurator-recording-rules", "configurator-recording",
		record("configurator:http_requests:rate5m",
			`sum(rate(configurator_http_requests_total[5m]))`),
		record("configurator:http_errors:rate5m",
			`sum(rate(configurator_http_requests_total{status=~"5.."}[5m]))`),
		record("configurator:recommendations:rate5m",
			`sum(rate(configurator_recommendations_total[5m]))`),
		record("configurator:recommendation_errors:rate5m",
			`sum(rate(configurator_recommendation_errors_total{reason!="invalid_criteria"}[5m]))`),
		record("configurator:catalog_refresh_errors:rate5m",
			`sum(rate(configurator_catalog_refresh_errors_total[5m]))`),
		record("configurator:cache_hit_ratio:rate5m",
			`sum(rate(configurator_cache_hits_total[5m])) / `+
				`(sum(rate(configurator_cache_hits_total[5m])) + sum(rate(configurator_cache_misses_total[5m])))`),
	)
}
