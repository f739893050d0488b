package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimitBurstThenReject(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(RateLimitRule{Rate: 1, Burst: 2}, func() time.Time { return now })

	r := gin.New()
	r.Use(RateLimit(limiter))
	r.POST("/process", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	for i := 0; i < 2; i++ {
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/process", nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("request %d expected 200, got %d", i+1, resp.Code)
		}
	}

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/process", nil))
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", resp.Code)
	}
	if got := resp.Header().Get("Retry-After"); got != "1" {
		t.Fatalf("expected Retry-After 1, got %q", got)
	}

	now = now.Add(time.Second)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/process", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 after refill, got %d", resp.Code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	limiter := NewRateLimiter(RateLimitRule{}, nil)
	for i := 0; i < 100; i++ {
		if ok, _ := limiter.Allow("client"); !ok {
			t.Fatalf("expected disabled limiter to allow request %d", i+1)
		}
	}
}

func TestRateLimiterEvictsIdleClients(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(RateLimitRule{Rate: 1, Burst: 2}, func() time.Time { return now })

	for _, key := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		if ok, _ := limiter.Allow(key); !ok {
			t.Fatalf("expected first request from %s to pass", key)
		}
	}
	if got := limiter.Len(); got != 3 {
		t.Fatalf("expected 3 tracked clients, got %d", got)
	}

	now = now.Add(30 * time.Second)
	limiter.Allow("10.0.0.1")
	if got := limiter.Len(); got != 3 {
		t.Fatalf("expected no eviction before idle window, got %d", got)
	}

	now = now.Add(45 * time.Second)
	limiter.Allow("10.0.0.4")
	if got := limiter.Len(); got != 2 {
		t.Fatalf("expected idle clients evicted, got %d", got)
	}
}
