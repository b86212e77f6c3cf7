package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// HostLimiter applies a token-bucket limit per upstream host so one busy
// pipeline cannot exhaust another provider's quota.
type HostLimiter struct {
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
		RequestsPerSecond: 5,
		BurstSize:         10,
	}
}

func NewHostLimiter(config Config) *HostLimiter {
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: config,
	}
}

func NewHostLimiterWithDefaults() *HostLimiter {
	return NewHostLimiter(DefaultConfig())
}

func (l *HostLimiter) GetLimiter(host string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[host]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, exists = l.limiters[host]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(l.defaults.RequestsPerSecond), l.defaults.BurstSize)
	l.limiters[host] = limiter
	return limiter
}

func (l *HostLimiter) SetHostLimit(host string, rps float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.limiters[host] = rate.NewLimiter(rate.Limit(rps), burst)
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.GetLimiter(host).Wait(ctx)
}
