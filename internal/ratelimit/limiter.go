package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// ModuleLimiter keeps one token bucket per platform API module, so a burst
// of availability searches cannot starve booking commits.
type ModuleLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults Config
}

type Config struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 10,
		BurstSize:         20,
	}
}

func NewModuleLimiter(config Config) *ModuleLimiter {
	return &ModuleLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: config.normalized(),
	}
}

// normalized treats a zero rate as unlimited and a zero burst as one token.
func (c Config) normalized() Config {
	if c.RequestsPerSecond <= 0 {
		c.RequestsPerSecond = float64(rate.Inf)
	}
	if c.BurstSize <= 0 {
		c.BurstSize = 1
	}
	return c
}

func (m *ModuleLimiter) Limiter(module string) *rate.Limiter {
	m.mu.RLock()
	limiter, exists := m.limiters[module]
	m.mu.RUnlock()

	if exists {
		return limiter
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if limiter, exists = m.limiters[module]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(m.defaults.RequestsPerSecond), m.defaults.BurstSize)
	m.limiters[module] = limiter
	return limiter
}

// SetModuleLimit overrides the bucket for one module.
func (m *ModuleLimiter) SetModuleLimit(module string, rps float64, burst int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := Config{RequestsPerSecond: rps, BurstSize: burst}.normalized()
	m.limiters[module] = rate.NewLimiter(rate.Limit(c.RequestsPerSecond), c.BurstSize)
}

func (m *ModuleLimiter) Wait(ctx context.Context, module string) error {
	return m.Limiter(module).Wait(ctx)
}
