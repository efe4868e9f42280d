// Package client is the entry point of the SDK. A Client owns one transport
// and exposes a façade per platform area.
package client

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dharmasatrya/bookingsdk/internal/cache"
	"github.com/dharmasatrya/bookingsdk/internal/metrics"
	"github.com/dharmasatrya/bookingsdk/internal/ratelimit"
	"github.com/dharmasatrya/bookingsdk/pkg/services"
	"github.com/dharmasatrya/bookingsdk/pkg/transport"
)

// DefaultAPIVersions is the platform API version each module targets unless
// Config.Versions overrides it.
var DefaultAPIVersions = map[string]string{
	"availability": "v4",
	"trip":         "v4",
	"booking":      "v3",
	"bundle":       "v2",
	"seat":         "v3",
	"equipment":    "v1",
	"message":      "v1",
	"queue":        "v2",
	"addons":       "v2",
	"navigation":   "v1",
	"user":         "v1",
	"payment":      "v6",
}

type Client struct {
	cfg       Config
	versions  map[string]string
	transport transport.Transport
	closer    func() error

	availability *services.AvailabilityService
	trip         *services.TripService
	booking      *services.BookingService
	bundle       *services.BundleService
	seat         *services.SeatService
	equipment    *services.EquipmentService
	message      *services.MessageService
	queue        *services.QueueService
	addOns       *services.AddOnsService
	navigation   *services.NavigationService
	user         *services.UserService
	payment      *services.PaymentService
}

type options struct {
	transport  transport.Transport
	registerer prometheus.Registerer
	cache      cache.Cache
}

type Option func(*options)

// WithTransport replaces the HTTP transport, typically with a test double.
// Cache and metrics options are ignored when it is set.
func WithTransport(t transport.Transport) Option {
	return func(o *options) { o.transport = t }
}

// WithRegisterer registers the SDK's metrics on r instead of a private registry.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *options) { o.registerer = r }
}

// WithCache supplies the response cache, overriding Config.Cache.
func WithCache(c cache.Cache) Option {
	return func(o *options) { o.cache = c }
}

func New(cfg Config, opts ...Option) (*Client, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.clone()

	versions := maps.Clone(DefaultAPIVersions)
	for module, v := range cfg.Versions {
		if _, ok := versions[module]; !ok {
			return nil, fmt.Errorf("unknown module %q in versions", module)
		}
		versions[module] = v
	}
	for module := range cfg.RateLimit.Modules {
		if _, ok := versions[module]; !ok {
			return nil, fmt.Errorf("unknown module %q in rate limits", module)
		}
	}

	c := &Client{
		cfg:       cfg,
		versions:  versions,
		transport: o.transport,
		closer:    func() error { return nil },
	}
	if c.transport == nil {
		t, err := newHTTPTransport(cfg, o)
		if err != nil {
			return nil, err
		}
		c.transport = t
		c.closer = t.Close
	}

	t := c.transport
	c.availability = services.NewAvailabilityService(t, versions["availability"])
	c.trip = services.NewTripService(t, versions["trip"])
	c.booking = services.NewBookingService(t, versions["booking"])
	c.bundle = services.NewBundleService(t, versions["bundle"])
	c.seat = services.NewSeatService(t, versions["seat"])
	c.equipment = services.NewEquipmentService(t, versions["equipment"])
	c.message = services.NewMessageService(t, versions["message"])
	c.queue = services.NewQueueService(t, versions["queue"])
	c.addOns = services.NewAddOnsService(t, versions["addons"], cfg.StrictSsrCodes)
	c.navigation = services.NewNavigationService(t, versions["navigation"])
	c.user = services.NewUserService(t, versions["user"])
	c.payment = services.NewPaymentService(t, versions["payment"])
	return c, nil
}

func newHTTPTransport(cfg Config, o options) (*transport.HTTPTransport, error) {
	respCache := o.cache
	if respCache == nil && cfg.Cache.Enabled {
		var err error
		if respCache, err = newCache(cfg.Cache); err != nil {
			return nil, err
		}
	}

	tcfg := transport.Config{
		BaseURL:     cfg.BaseURL,
		Token:       cfg.Token,
		UserAgent:   cfg.UserAgent,
		Timeout:     cfg.Timeout,
		MaxRetries:  cfg.MaxRetries,
		RetryDelays: cfg.RetryDelays,
		RateLimit: ratelimit.Config{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			BurstSize:         cfg.RateLimit.Burst,
		},
		ModuleLimits: moduleLimits(cfg.RateLimit.Modules),
		Breaker: transport.BreakerConfig{
			Enabled:      cfg.Breaker.Enabled,
			MaxRequests:  cfg.Breaker.MaxRequests,
			Interval:     cfg.Breaker.Interval,
			Timeout:      cfg.Breaker.Timeout,
			FailureRatio: cfg.Breaker.FailureRatio,
			MinRequests:  cfg.Breaker.MinRequests,
		},
		CachePrefixes: cfg.Cache.Prefixes,
	}

	topts := []transport.Option{transport.WithMetrics(metrics.New(o.registerer))}
	if respCache != nil {
		topts = append(topts, transport.WithCache(respCache))
	}
	t, err := transport.NewHTTPTransport(tcfg, topts...)
	if err != nil {
		if respCache != nil {
			err = errors.Join(err, respCache.Close())
		}
		return nil, err
	}
	return t, nil
}

func moduleLimits(in map[string]ModuleRateLimit) map[string]ratelimit.Config {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]ratelimit.Config, len(in))
	for module, l := range in {
		out[module] = ratelimit.Config{RequestsPerSecond: l.RequestsPerSecond, BurstSize: l.Burst}
	}
	return out
}

func newCache(cfg CacheConfig) (cache.Cache, error) {
	if cfg.Backend == "redis" {
		c, err := cache.NewRedisCache(cache.RedisConfig{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.TTL,
		})
		if err != nil {
			return nil, fmt.Errorf("response cache: %w", err)
		}
		return c, nil
	}
	return cache.NewMemoryCache(cfg.TTL), nil
}

func (c *Client) Availability() *services.AvailabilityService { return c.availability }
func (c *Client) Trip() *services.TripService                 { return c.trip }
func (c *Client) Booking() *services.BookingService           { return c.booking }
func (c *Client) Bundle() *services.BundleService             { return c.bundle }
func (c *Client) Seat() *services.SeatService                 { return c.seat }
func (c *Client) Equipment() *services.EquipmentService       { return c.equipment }
func (c *Client) Message() *services.MessageService           { return c.message }
func (c *Client) Queue() *services.QueueService               { return c.queue }
func (c *Client) AddOns() *services.AddOnsService             { return c.addOns }
func (c *Client) Navigation() *services.NavigationService     { return c.navigation }
func (c *Client) User() *services.UserService                 { return c.user }
func (c *Client) Payment() *services.PaymentService           { return c.payment }

// APIVersion returns the version a module is configured with, or "" for an
// unknown module.
func (c *Client) APIVersion(module string) string {
	return c.versions[module]
}

// APIVersions returns a copy of the per-module versions in use.
func (c *Client) APIVersions() map[string]string {
	return maps.Clone(c.versions)
}

// Services lists the module names in sorted order.
func (c *Client) Services() []string {
	names := make([]string, 0, len(c.versions))
	for name := range c.versions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (c *Client) Config() Config {
	return c.cfg.clone()
}

// Close releases the transport's resources. A caller-supplied transport is
// left alone.
func (c *Client) Close() error {
	return c.closer()
}
