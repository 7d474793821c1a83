// Package security holds the request limiting used by the HTTP API.
package security

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// Defaults of [NewRateLimiter].
const (
	DefaultMaxRequests = 100
	DefaultWindow      = time.Minute
)

// RateLimiter describes the per-client allowance of the API: maxRequests
// per window, keyed by the real client IP. Counting is done by httprate
// with a sliding window estimate, so expired windows need no cleanup.
type RateLimiter struct {
	maxRequests int
	window      time.Duration
}

// NewRateLimiter returns a limiter admitting maxRequests per window.
// Non-positive arguments fall back to the defaults.
func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	if maxRequests <= 0 {
		maxRequests = DefaultMaxRequests
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &RateLimiter{maxRequests: maxRequests, window: window}
}

func (l *RateLimiter) Limit() int { return l.maxRequests }

func (l *RateLimiter) Window() time.Duration { return l.window }

// Middleware returns a middleware with its own counters. Every handler it
// wraps shares them. Requests over the limit get the X-RateLimit-* and
// Retry-After headers set and are passed to onLimit instead of next.
func (l *RateLimiter) Middleware(onLimit http.HandlerFunc) func(http.Handler) http.Handler {
	opts := []httprate.Option{httprate.WithKeyFuncs(httprate.KeyByRealIP)}
	if onLimit != nil {
		opts = append(opts, httprate.WithLimitHandler(onLimit))
	}
	return httprate.Limit(l.maxRequests, l.window, opts...)
}
