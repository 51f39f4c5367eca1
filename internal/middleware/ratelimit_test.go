package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestRateLimiter_Allow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := NewRateLimiter(3, 15*time.Minute)
	l.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if l.Allow("1.2.3.4") {
		t.Fatal("4th request within window should be rejected")
	}

	// a different IP has its own budget
	if !l.Allow("5.6.7.8") {
		t.Fatal("different IP should not be affected")
	}

	// once the window elapses the counter resets
	now = now.Add(15*time.Minute + time.Second)
	if !l.Allow("1.2.3.4") {
		t.Fatal("request after window elapsed should be allowed")
	}
	if !l.Allow("1.2.3.4") {
		t.Fatal("second request of new window should be allowed")
	}
}

func TestRateLimiter_ExactBudget(t *testing.T) {
	l := NewRateLimiter(5, time.Minute)

	allowed := 0
	for i := 0; i < 10; i++ {
		if l.Allow("9.9.9.9") {
			allowed++
		}
	}
	if allowed != 5 {
		t.Fatalf("expected exactly 5 allowed, got %d", allowed)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	e := echo.New()
	l := NewRateLimiter(1, time.Minute)
	h := RateLimit(l)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	do := func() int {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if err := h(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		return rec.Code
	}

	if code := do(); code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", code)
	}
	if code := do(); code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", code)
	}
}
