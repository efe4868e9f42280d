package client

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dharmasatrya/bookingsdk/internal/cache"
	"github.com/dharmasatrya/bookingsdk/internal/ratelimit"
)

var apiVersionRegex = regexp.MustCompile(`^v\d+$`)

// Config holds everything the client needs to reach the platform. It is
// copied at construction and never read again after New returns.
type Config struct {
	BaseURL   string        `koanf:"base_url" validate:"required,url"`
	Token     string        `koanf:"token"`
	UserAgent string        `koanf:"user_agent"`
	Timeout   time.Duration `koanf:"timeout" validate:"gte=0"`

	MaxRetries  int             `koanf:"max_retries" validate:"gte=0,lte=10"`
	RetryDelays []time.Duration `koanf:"retry_delays" validate:"dive,gte=0"`

	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Breaker   BreakerConfig   `koanf:"breaker"`
	Cache     CacheConfig     `koanf:"cache"`

	// Versions overrides DefaultAPIVersions per module, e.g. "payment": "v7".
	Versions map[string]string `koanf:"versions" validate:"dive,apiversion"`

	// StrictSsrCodes rejects SSR codes the SDK does not recognise instead of
	// logging them and letting the platform decide.
	StrictSsrCodes bool `koanf:"strict_ssr_codes"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second" validate:"gte=0"`
	Burst             int     `koanf:"burst" validate:"gte=0"`

	// Modules gives individual modules their own bucket, e.g. a slower one
	// for payment than for availability searches.
	Modules map[string]ModuleRateLimit `koanf:"modules" validate:"dive"`
}

type ModuleRateLimit struct {
	RequestsPerSecond float64 `koanf:"requests_per_second" validate:"gt=0"`
	Burst             int     `koanf:"burst" validate:"gte=1"`
}

type BreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval" validate:"gte=0"`
	Timeout      time.Duration `koanf:"timeout" validate:"gte=0"`
	FailureRatio float64       `koanf:"failure_ratio" validate:"gte=0,lte=1"`
	MinRequests  uint32        `koanf:"min_requests"`
}

type CacheConfig struct {
	Enabled bool `koanf:"enabled"`

	// Backend is redis or memory.
	Backend       string        `koanf:"backend" validate:"omitempty,oneof=redis memory"`
	RedisHost     string        `koanf:"redis_host" validate:"required_if=Backend redis"`
	RedisPort     string        `koanf:"redis_port" validate:"omitempty,numeric"`
	RedisPassword string        `koanf:"redis_password"`
	RedisDB       int           `koanf:"redis_db" validate:"gte=0"`
	TTL           time.Duration `koanf:"ttl" validate:"gte=0"`
	Prefixes      []string      `koanf:"prefixes"`
}

func DefaultConfig() Config {
	limits := ratelimit.DefaultConfig()
	redisCfg := cache.DefaultRedisConfig()
	return Config{
		BaseURL:     "http://localhost:8080",
		UserAgent:   "bookingsdk-go",
		Timeout:     30 * time.Second,
		MaxRetries:  3,
		RetryDelays: []time.Duration{200 * time.Millisecond, 500 * time.Millisecond, time.Second},
		RateLimit:   RateLimitConfig{RequestsPerSecond: limits.RequestsPerSecond, Burst: limits.BurstSize},
		Breaker: BreakerConfig{
			Enabled:      true,
			MaxRequests:  1,
			Interval:     time.Minute,
			Timeout:      30 * time.Second,
			FailureRatio: 0.6,
			MinRequests:  5,
		},
		Cache: CacheConfig{
			Backend:   "memory",
			RedisHost: redisCfg.Host,
			RedisPort: redisCfg.Port,
			RedisDB:   redisCfg.DB,
			TTL:       redisCfg.TTL,
			Prefixes:  []string{"resources/"},
		},
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("apiversion", func(fl validator.FieldLevel) bool {
		return apiVersionRegex.MatchString(fl.Field().String())
	})
	return v
}

// Validate reports every invalid field in one error.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid client config: %s", strings.Join(msgs, "; "))
}

func (c Config) clone() Config {
	c.RetryDelays = slices.Clone(c.RetryDelays)
	c.Versions = maps.Clone(c.Versions)
	c.Cache.Prefixes = slices.Clone(c.Cache.Prefixes)
	c.RateLimit.Modules = maps.Clone(c.RateLimit.Modules)
	return c
}
