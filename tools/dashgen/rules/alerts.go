package rules

// AlertRules returns the configurator's operational alerts.
func AlertRules() PrometheusRule {
	return newPrometheusRule("configurator-alerts", "configurator-alerts",
		alert("ConfiguratorDown",
			`absent(up{job="configurator"})`, "2m", SeverityCritical,
			"Configurator is down",
			"The configurator job has been absent for more than 2 minutes."),
		alert("ConfiguratorNotReady",
			`configurator_readyz_up == 0`, "5m", SeverityCritical,
			"Configurator has no catalog loaded",
			"The readiness check has been failing for 5 minutes; recommendation requests are answered with 503."),
		alert("ConfiguratorHighErrorRate",
			`configurator:http_errors:rate5m / configurator:http_requests:rate5m > 0.05`, "5m", SeverityWarning,
			"High HTTP error rate on the configurator",
			"More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes."),
		alert("ConfiguratorRecommendationErrors",
			`configurator:recommendation_errors:rate5m > 0`, "5m", SeverityWarning,
			"Recommendation requests are failing",
			"Recommendations have been failing for reasons other than invalid criteria for 5 minutes."),
		alert("ConfiguratorCatalogRefreshFailing",
			`configurator:catalog_refresh_errors:rate5m > 0`, "15m", SeverityWarning,
			"Catalog refreshes are failing",
			"The catalog source has been failing for 15 minutes; the previous snapshot is still served."),
		alert("ConfiguratorCatalogStale",
			`time() - configurator_catalog_last_refresh_timestamp_seconds > 3 * 3600`, "10m", SeverityWarning,
			"Catalog snapshot is stale",
			"The catalog has not been refreshed successfully in more than 3 hours."),
		alert("ConfiguratorMalformedProducts",
			`configurator_catalog_malformed_items > 0`, "30m", SeverityInfo,
			"Catalog contains malformed products",
			"Some products lack a valid price or usage tags and always rank last until the catalog is fixed."),
		alert("ConfiguratorCacheErrors",
			`increase(configurator_cache_errors_total[5m]) > 0`, "10m", SeverityWarning,
			"Redis catalog cache errors detected",
			"The catalog cache is failing; refreshes fall through to the underlying source."),
	)
}
