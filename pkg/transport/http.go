package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/dharmasatrya/bookingsdk/internal/cache"
	"github.com/dharmasatrya/bookingsdk/internal/logging"
	"github.com/dharmasatrya/bookingsdk/internal/metrics"
	"github.com/dharmasatrya/bookingsdk/internal/ratelimit"
)

const RequestIDHeader = "X-Request-ID"

var versionPrefix = regexp.MustCompile(`^api/nsk/v\d+/`)

type BreakerConfig struct {
	Enabled      bool
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	FailureRatio float64
	MinRequests  uint32
}

type Config struct {
	BaseURL     string
	Token       string
	UserAgent   string
	Timeout     time.Duration
	MaxRetries  int
	RetryDelays []time.Duration
	RateLimit   ratelimit.Config
	Breaker     BreakerConfig

	// ModuleLimits replaces RateLimit for the named modules.
	ModuleLimits map[string]ratelimit.Config

	// CachePrefixes lists the path prefixes, after api/nsk/vN/, whose GET
	// responses may be served from the cache.
	CachePrefixes []string
}

type HTTPTransport struct {
	baseURL string
	cfg     Config
	client  *http.Client
	limiter *ratelimit.ModuleLimiter
	breaker *gobreaker.CircuitBreaker[*Response]
	cache   cache.Cache
	metrics *metrics.Metrics
	log     zerolog.Logger
}

type Option func(*HTTPTransport)

func WithHTTPClient(c *http.Client) Option {
	return func(t *HTTPTransport) { t.client = c }
}

func WithCache(c cache.Cache) Option {
	return func(t *HTTPTransport) { t.cache = c }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(t *HTTPTransport) { t.metrics = m }
}

func NewHTTPTransport(cfg Config, opts ...Option) (*HTTPTransport, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", cfg.BaseURL)
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	t := &HTTPTransport{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: ratelimit.NewModuleLimiter(cfg.RateLimit),
		cache:   cache.NewNoOpCache(),
		log:     logging.Component("transport"),
	}
	for module, l := range cfg.ModuleLimits {
		t.limiter.SetModuleLimit(module, l.RequestsPerSecond, l.BurstSize)
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.metrics == nil {
		t.metrics = metrics.New(nil)
	}
	if cfg.Breaker.Enabled {
		t.breaker = newBreaker(cfg.Breaker, t.metrics)
	}
	return t, nil
}

func (t *HTTPTransport) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return t.do(ctx, http.MethodGet, path, query, nil)
}

func (t *HTTPTransport) Post(ctx context.Context, path string, body any) (*Response, error) {
	return t.do(ctx, http.MethodPost, path, nil, body)
}

func (t *HTTPTransport) Put(ctx context.Context, path string, body any) (*Response, error) {
	return t.do(ctx, http.MethodPut, path, nil, body)
}

func (t *HTTPTransport) Patch(ctx context.Context, path string, body any) (*Response, error) {
	return t.do(ctx, http.MethodPatch, path, nil, body)
}

func (t *HTTPTransport) Delete(ctx context.Context, path string, query url.Values, body any) (*Response, error) {
	return t.do(ctx, http.MethodDelete, path, query, body)
}

// Close releases the response cache.
func (t *HTTPTransport) Close() error {
	return t.cache.Close()
}

func (t *HTTPTransport) do(ctx context.Context, method, path string, query url.Values, body any) (*Response, error) {
	module := ModuleFrom(ctx)
	start := time.Now()

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
	}

	cacheable := method == http.MethodGet && t.cacheable(path)
	key := ""
	if cacheable {
		key = cache.Key(method, path, query)
		if data, ok := t.cache.Get(ctx, key); ok {
			t.metrics.CacheHits.Inc()
			t.metrics.ObserveRequest(module, method, metrics.OutcomeCached, time.Since(start))
			return &Response{StatusCode: http.StatusOK, Header: http.Header{"X-Cache": []string{"HIT"}}, Body: data}, nil
		}
		t.metrics.CacheMisses.Inc()
	}

	resp, err := t.withRetry(ctx, module, method, path, func() (*Response, error) {
		return t.execute(func() (*Response, error) {
			return t.attempt(ctx, method, path, query, payload)
		})
	})
	t.metrics.ObserveRequest(module, method, outcome(err), time.Since(start))
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := t.cache.Set(ctx, key, resp.Body); err != nil {
			t.log.Warn().Err(err).Str("path", path).Msg("cache write failed")
		}
	}
	return resp, nil
}

func (t *HTTPTransport) withRetry(ctx context.Context, module, method, path string, fn func() (*Response, error)) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt <= t.cfg.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if attempt > 0 {
			t.metrics.Retries.WithLabelValues(module).Inc()
			select {
			case <-time.After(t.retryDelay(attempt)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		if err := t.limiter.Wait(ctx, module); err != nil {
			return nil, fmt.Errorf("rate limit wait for %s: %w", module, err)
		}

		resp, err := fn()
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !retryable(err) || !idempotent(method) {
			return nil, err
		}
		t.log.Warn().Err(err).Str("module", module).Str("method", method).Str("path", path).
			Int("attempt", attempt+1).Msg("platform request failed")
	}

	return nil, lastErr
}

func (t *HTTPTransport) retryDelay(attempt int) time.Duration {
	if len(t.cfg.RetryDelays) == 0 {
		return 0
	}
	idx := attempt - 1
	if idx >= len(t.cfg.RetryDelays) {
		idx = len(t.cfg.RetryDelays) - 1
	}
	return t.cfg.RetryDelays[idx]
}

func (t *HTTPTransport) execute(fn func() (*Response, error)) (*Response, error) {
	if t.breaker == nil {
		return fn()
	}
	return t.breaker.Execute(fn)
}

func (t *HTTPTransport) attempt(ctx context.Context, method, path string, query url.Values, payload []byte) (*Response, error) {
	var reader io.Reader = http.NoBody
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+"/"+strings.TrimPrefix(path, "/"), reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.cfg.Token != "" {
		req.Header.Set("Authorization", t.cfg.Token)
	}
	if t.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", t.cfg.UserAgent)
	}
	req.Header.Set(RequestIDHeader, uuid.NewString())

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newStatusError(resp.StatusCode, data)
	}
	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

func (t *HTTPTransport) cacheable(path string) bool {
	rest := versionPrefix.ReplaceAllString(strings.TrimPrefix(path, "/"), "")
	for _, prefix := range t.cfg.CachePrefixes {
		if prefix != "" && strings.HasPrefix(rest, prefix) {
			return true
		}
	}
	return false
}

// idempotent reports whether method may be sent again after a failure the
// platform might already have acted on. POST and PATCH never are: a retried
// payment or booking commit could be applied twice.
func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete:
		return true
	}
	return false
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || isBreakerRejection(err) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Retryable()
	}
	return true
}

func outcome(err error) string {
	var se *StatusError
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.As(err, &se):
		return metrics.OutcomeHTTPErr
	case isBreakerRejection(err):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeNetErr
	}
}
