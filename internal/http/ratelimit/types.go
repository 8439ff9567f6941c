package ratelimit

import (
	"sync"
	"time"
)

// Config holds rate limiting configuration for outbound provider calls
type Config struct {
	RequestsPerSecond int `json:"requestsPerSecond"`
	MaxRetries        int `json:"maxRetries"`
	InitialBackoffMs  int `json:"initialBackoffMs"`
	MaxBackoffMs      int `json:"maxBackoffMs"`
}

// DefaultConfig returns the default rate limit configuration
func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 2,
		MaxRetries:        3,
		InitialBackoffMs:  100,
		MaxBackoffMs:      30000,
	}
}

// RateLimiter spaces out requests so the provider sees at most
// RequestsPerSecond calls. Safe for concurrent use.
type RateLimiter struct {
	mu          sync.Mutex
	config      Config
	lastRequest time.Time
}

// NewRateLimiter creates a new rate limiter with the given config
func NewRateLimiter(config Config) *RateLimiter {
	return &RateLimiter{config: config}
}

// GetConfig returns the current configuration
func (r *RateLimiter) GetConfig() Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.config
}

// SetConfig updates the configuration
func (r *RateLimiter) SetConfig(config Config) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.config = config
}

// Throttle blocks until the next request is allowed.
// Call this before making a request.
func (r *RateLimiter) Throttle() {
	r.mu.Lock()
	minInterval := time.Second / time.Duration(r.config.RequestsPerSecond)
	wait := minInterval - time.Since(r.lastRequest)
	if wait > 0 {
		// Hold the slot while sleeping so concurrent callers queue up
		time.Sleep(wait)
	}
	r.lastRequest = time.Now()
	r.mu.Unlock()
}

// Reset resets the rate limiter state.
// Useful for testing or after long pauses.
func (r *RateLimiter) Reset() {
	r.mu.Lock()
	r.lastRequest = time.Time{}
	r.mu.Unlock()
}
