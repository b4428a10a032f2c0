package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestLog returns Echo middleware that logs one structured line per
// request and propagates an X-Request-ID, generating one when the caller did
// not send it.
//
// Health endpoints (/healthz, /readyz) log their first success and every
// failure; repeated successes are dropped so that orchestrator polling does
// not drown the API traffic.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	checks := &healthLog{healthy: map[string]bool{}}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			// Let echo render a returned error now so the logged status is
			// the one the client sees.
			if err := next(c); err != nil {
				c.Error(err)
			}

			path := c.Request().URL.Path
			status := c.Response().Status
			if !checks.shouldLog(path, status) {
				return nil
			}

			level := levelFor(status)
			if isHealthPath(path) && level > slog.LevelWarn {
				level = slog.LevelWarn
			}

			log.Log(c.Request().Context(), level, "request",
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_ip", c.RealIP(),
				"request_id", reqID,
			)

			return nil
		}
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// healthLog remembers which health paths last answered successfully.
type healthLog struct {
	mu      sync.Mutex
	healthy map[string]bool
}

func isHealthPath(path string) bool {
	return path == "/healthz" || path == "/readyz"
}

func (p *healthLog) shouldLog(path string, status int) bool {
	if !isHealthPath(path) {
		return true
	}

	ok := status >= 200 && status < 300

	p.mu.Lock()
	defer p.mu.Unlock()

	if !ok {
		p.healthy[path] = false
		return true
	}
	if p.healthy[path] {
		return false
	}
	p.healthy[path] = true
	return true
}
