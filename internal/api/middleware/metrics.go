// Package middleware provides Echo middleware for the configurator API.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Gorgui12/tekalis-configurator/internal/metrics"
)

// healthPaths are scraped or polled far more often than the API is called;
// they only update up/down gauges and never reach the request histograms.
var healthPaths = map[string]prometheus.Gauge{
	"/metrics": nil,
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// Metrics returns Echo middleware that records request duration and status
// per route template, so /api/v1/catalog/:id is one series rather than one
// per product.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route := routeOf(c)

			if gauge, ok := healthPaths[route]; ok {
				err := next(c)
				setUp(gauge, c.Response().Status)
				return err
			}

			start := time.Now()
			err := next(c)
			elapsed := time.Since(start).Seconds()

			labels := []string{
				c.Request().Method,
				route,
				strconv.Itoa(c.Response().Status),
			}
			metrics.HTTPRequestDuration.WithLabelValues(labels...).Observe(elapsed)
			metrics.HTTPRequestsTotal.WithLabelValues(labels...).Inc()

			return err
		}
	}
}

// routeOf returns the matched route template, falling back to the raw path
// for requests that matched no route.
func routeOf(c echo.Context) string {
	if p := c.Path(); p != "" {
		return p
	}
	return c.Request().URL.Path
}

func setUp(gauge prometheus.Gauge, status int) {
	if gauge == nil {
		return
	}
	if status >= 200 && status < 300 {
		gauge.Set(1)
		return
	}
	gauge.Set(0)
}
