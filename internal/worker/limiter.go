package worker

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// KeyLimiter applies an independent token bucket per key. The server
// keys by client IP; batch keys by a single shared bucket.
type KeyLimiter struct {
	limiters     map[string]*rate.Limiter
	mu           sync.RWMutex
	defaultRate  rate.Limit
	defaultBurst int
}

// NewKeyLimiter creates a limiter with the given default rate and burst.
func NewKeyLimiter(requestsPerSecond float64, burst int) *KeyLimiter {
	if burst <= 0 {
		burst = 5
	}
	return &KeyLimiter{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  rate.Limit(requestsPerSecond),
		defaultBurst: burst,
	}
}

// Wait blocks until the key's bucket grants a token or ctx ends.
func (l *KeyLimiter) Wait(ctx context.Context, key string) error {
	return l.limiter(key).Wait(ctx)
}

// Allow reports whether the key may proceed right now.
func (l *KeyLimiter) Allow(key string) bool {
	return l.limiter(key).Allow()
}

func (l *KeyLimiter) limiter(key string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[key]
	l.mu.RUnlock()
	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Re-check after acquiring the write lock.
	if limiter, exists := l.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(l.defaultRate, l.defaultBurst)
	l.limiters[key] = limiter
	return limiter
}

// SetKeyRate overrides the rate for one key.
func (l *KeyLimiter) SetKeyRate(key string, requestsPerSecond float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if burst <= 0 {
		burst = l.defaultBurst
	}
	l.limiters[key] = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
}
