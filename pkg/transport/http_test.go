package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/dharmasatrya/bookingsdk/internal/cache"
	"github.com/dharmasatrya/bookingsdk/internal/metrics"
	"github.com/dharmasatrya/bookingsdk/internal/ratelimit"
)

func newTestTransport(t *testing.T, srv *httptest.Server, mutate func(*Config), opts ...Option) *HTTPTransport {
	t.Helper()
	cfg := Config{
		BaseURL:     srv.URL,
		Token:       "test-token",
		UserAgent:   "bookingsdk-test",
		Timeout:     2 * time.Second,
		MaxRetries:  2,
		RetryDelays: []time.Duration{time.Millisecond},
	}
	if mutate != nil {
		mutate(&cfg)
	}
	tr, err := NewHTTPTransport(cfg, opts...)
	require.NoError(t, err)
	return tr
}

func TestRetriesServerErrorThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"data":{"ok":true}}`))
	}))
	defer srv.Close()

	m := metrics.New(nil)
	tr := newTestTransport(t, srv, nil, WithMetrics(m))

	resp, err := tr.Get(WithModule(context.Background(), "booking"), "api/nsk/v1/booking", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Retries.WithLabelValues("booking")))
}

func TestDoesNotRetryClientError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"code":"nsk:Booking:Invalid","message":"Record locator not found"}]}`))
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv, nil)
	_, err := tr.Post(context.Background(), "api/nsk/v3/booking", map[string]any{})

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 400, se.HTTPStatus())
	assert.Equal(t, "Record locator not found", se.Message)
	assert.False(t, se.Retryable())
	assert.Equal(t, int32(1), calls.Load())
}

func TestDoesNotRetryNonIdempotentMethods(t *testing.T) {
	testCases := []struct {
		name string
		call func(*HTTPTransport) (*Response, error)
	}{
		{"post payment", func(tr *HTTPTransport) (*Response, error) {
			return tr.Post(context.Background(), "api/nsk/v6/booking/payments", map[string]any{"amount": 10})
		}},
		{"patch user", func(tr *HTTPTransport) (*Response, error) {
			return tr.Patch(context.Background(), "api/nsk/v1/users/user-1", map[string]any{"firstName": "Ada"})
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if calls.Add(1) == 1 {
					w.WriteHeader(http.StatusBadGateway)
					return
				}
				w.WriteHeader(http.StatusCreated)
			}))
			defer srv.Close()

			_, err := tc.call(newTestTransport(t, srv, nil))

			var se *StatusError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, http.StatusBadGateway, se.HTTPStatus())
			assert.Equal(t, int32(1), calls.Load())
		})
	}
}

func TestRetriesIdempotentWrites(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv, nil)
	_, err := tr.Put(context.Background(), "api/nsk/v1/messages/message-1/read", nil)
	require.NoError(t, err)
	_, err = tr.Delete(context.Background(), "api/nsk/v6/booking/payments/payment-1", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv, nil)
	_, err := tr.Get(context.Background(), "api/nsk/v1/booking", nil)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusTooManyRequests, se.StatusCode)
	assert.Equal(t, "Too Many Requests", se.Message)
	assert.Equal(t, int32(3), calls.Load())
}

func TestRequestShape(t *testing.T) {
	var got *http.Request
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv, nil)
	_, err := tr.Post(context.Background(), "api/nsk/v4/availability/search/simple", map[string]any{"origin": "NBO"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/api/nsk/v4/availability/search/simple", got.URL.Path)
	assert.Equal(t, "test-token", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "bookingsdk-test", got.Header.Get("User-Agent"))
	_, err = uuid.Parse(got.Header.Get(RequestIDHeader))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"origin":"NBO"}`, string(body))
}

func TestQueryAndDeleteBody(t *testing.T) {
	var gotQuery url.Values
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv, nil)
	resp, err := tr.Delete(context.Background(), "api/nsk/v2/booking/queue", url.Values{"force": {"true"}}, map[string]any{"queueCode": "SCHED"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "true", gotQuery.Get("force"))
	assert.JSONEq(t, `{"queueCode":"SCHED"}`, string(body))
}

func TestCachesResourceLookups(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"data":[{"stationCode":"NBO"}]}`))
	}))
	defer srv.Close()

	m := metrics.New(nil)
	tr := newTestTransport(t, srv, func(c *Config) { c.CachePrefixes = []string{"resources/"} },
		WithCache(cache.NewMemoryCache(time.Minute)), WithMetrics(m))
	ctx := context.Background()

	first, err := tr.Get(ctx, "api/nsk/v1/resources/stations", nil)
	require.NoError(t, err)
	second, err := tr.Get(ctx, "api/nsk/v1/resources/stations", nil)
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, first.Body, second.Body)
	assert.Equal(t, "HIT", second.Header.Get("X-Cache"))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheHits))

	_, err = tr.Get(ctx, "api/nsk/v1/booking", nil)
	require.NoError(t, err)
	_, err = tr.Get(ctx, "api/nsk/v1/booking", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load(), "booking reads are never cached")
}

func TestBreakerOpensOnServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv, func(c *Config) {
		c.MaxRetries = 0
		c.Breaker = BreakerConfig{Enabled: true, MaxRequests: 1, Interval: time.Minute, Timeout: time.Minute, FailureRatio: 0.5, MinRequests: 2}
	})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := tr.Get(ctx, "api/nsk/v1/booking", nil)
		require.Error(t, err)
	}
	_, err := tr.Get(ctx, "api/nsk/v1/booking", nil)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(2), calls.Load())
}

func TestBreakerIgnoresClientErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv, func(c *Config) {
		c.Breaker = BreakerConfig{Enabled: true, MaxRequests: 1, Interval: time.Minute, Timeout: time.Minute, FailureRatio: 0.5, MinRequests: 2}
	})

	for i := 0; i < 5; i++ {
		_, err := tr.Get(context.Background(), "api/nsk/v1/users/42", nil)
		var se *StatusError
		require.ErrorAs(t, err, &se)
	}
}

func TestModuleLimitsOverrideDefault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	tr := newTestTransport(t, srv, func(c *Config) {
		c.RateLimit = ratelimit.Config{RequestsPerSecond: 10, BurstSize: 20}
		c.ModuleLimits = map[string]ratelimit.Config{"payment": {RequestsPerSecond: 2, BurstSize: 3}}
	})

	assert.Equal(t, rate.Limit(2), tr.limiter.Limiter("payment").Limit())
	assert.Equal(t, 3, tr.limiter.Limiter("payment").Burst())
	assert.Equal(t, rate.Limit(10), tr.limiter.Limiter("availability").Limit())
	assert.Equal(t, 20, tr.limiter.Limiter("availability").Burst())
}

func TestInvalidBaseURL(t *testing.T) {
	_, err := NewHTTPTransport(Config{BaseURL: "not a url"})
	assert.ErrorContains(t, err, "invalid base URL")
}

func TestCancelledContextStopsRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv, func(c *Config) {
		c.MaxRetries = 5
		c.RetryDelays = []time.Duration{time.Second}
	})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := tr.Get(ctx, "api/nsk/v1/booking", nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
