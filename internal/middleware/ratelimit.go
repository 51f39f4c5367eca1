package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// RateLimiter is a best-effort, in-process counter per client IP.
// State is lost on restart and not shared across instances; it is an
// abuse deterrent, not a correctness gate.
type RateLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	entries map[string]*rateEntry

	now func() time.Time // swappable for tests
}

type rateEntry struct {
	count       int
	windowStart time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		window:  window,
		entries: make(map[string]*rateEntry),
		now:     time.Now,
	}
}

// Allow records one request from key and reports whether it is within
// the limit for the current window.
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[key]
	if !ok || now.Sub(e.windowStart) > l.window {
		l.entries[key] = &rateEntry{count: 1, windowStart: now}
		return true
	}
	if e.count >= l.limit {
		return false
	}
	e.count++
	return true
}

// RateLimit returns an Echo middleware rejecting requests over the
// limiter's budget with 429. Each call site gets its own limiter so
// different endpoints carry different (limit, window) pairs.
func RateLimit(l *RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !l.Allow(c.RealIP()) {
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error": "too many requests, try again later",
				})
			}
			return next(c)
		}
	}
}
