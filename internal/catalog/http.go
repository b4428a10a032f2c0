package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/Gorgui12/tekalis-configurator/internal/metrics"
	domain "github.com/Gorgui12/tekalis-configurator/pkg/types"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	maxCatalogBytes    = 32 << 20
)

// HTTPSource fetches the catalog from a storefront REST endpoint returning
// {"products": [...]} or a bare JSON array. Requests go through a token
// bucket so refreshes never hammer the storefront.
type HTTPSource struct {
	url     string
	client  *http.Client
	headers map[string]string
	limiter *rate.Limiter
	log     *slog.Logger
}

// HTTPOption configures an HTTPSource.
type HTTPOption func(*HTTPSource)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(s *HTTPSource) {
		s.client = c
	}
}

// WithHeaders adds headers, such as Authorization, to every request.
func WithHeaders(h map[string]string) HTTPOption {
	return func(s *HTTPSource) {
		for k, v := range h {
			s.headers[k] = v
		}
	}
}

// WithRateLimit caps requests at perSecond with the given burst. A
// non-positive rate disables limiting.
func WithRateLimit(perSecond float64, burst int) HTTPOption {
	return func(s *HTTPSource) {
		if perSecond <= 0 {
			s.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		s.limiter = rate.NewLimiter(rate.Limit(perSecond), max(burst, 1))
	}
}

// WithHTTPLogger sets a custom logger.
func WithHTTPLogger(l *slog.Logger) HTTPOption {
	return func(s *HTTPSource) {
		s.log = l
	}
}

// NewHTTPSource returns a Source reading url.
func NewHTTPSource(url string, opts ...HTTPOption) *HTTPSource {
	s := &HTTPSource{
		url:     url,
		client:  &http.Client{Timeout: defaultHTTPTimeout},
		headers: map[string]string{"Accept": "application/json"},
		limiter: rate.NewLimiter(rate.Limit(2), 4),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name implements Source.
func (s *HTTPSource) Name() string { return "http" }

// Fetch implements Source.
func (s *HTTPSource) Fetch(ctx context.Context) ([]domain.CatalogItem, error) {
	waitStart := time.Now()
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}
	metrics.RemoteCatalogRateLimitWaits.Observe(time.Since(waitStart).Seconds())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	for k, v := range s.headers {
		req.Header.Set(k, v)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		metrics.RemoteCatalogRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	metrics.RemoteCatalogRequestsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		s.log.Warn("remote catalog returned non-200",
			"url", s.url,
			"status", resp.StatusCode,
		)
		return nil, fmt.Errorf("%w: HTTP %d: %s", ErrSourceUnavailable, resp.StatusCode, truncate(body, 200))
	}

	items, err := Parse(body, FormatJSON)
	if err != nil {
		return nil, err
	}

	s.log.Debug("fetched remote catalog", "url", s.url, "items", len(items))
	return items, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
