package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/radiusdt/wellwave-hub/internal/config"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func limitCfg(perIPBurst int) config.RateLimitConfig {
	return config.RateLimitConfig{
		Enabled:    true,
		RPS:        1000,
		Burst:      1000,
		PerIPRPS:   0.001,
		PerIPBurst: perIPBurst,
		Window:     time.Minute,
	}
}

func hit(h http.Handler, path, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = ip + ":12345"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRateLimitPerIP(t *testing.T) {
	rl := NewRateLimitMiddleware(limitCfg(2), zaptest.NewLogger(t))
	h := rl.Handler(okHandler)

	assert.Equal(t, http.StatusOK, hit(h, "/api/brands", "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, hit(h, "/api/brands", "10.0.0.1").Code)

	rr := hit(h, "/api/brands", "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "1", rr.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, rr.Body.String())

	assert.Equal(t, http.StatusOK, hit(h, "/api/brands", "10.0.0.2").Code, "other clients are unaffected")
	assert.Equal(t, http.StatusOK, hit(h, "/health", "10.0.0.1").Code, "health checks are exempt")

	rl.CleanupIPLimiters()
	assert.Equal(t, http.StatusOK, hit(h, "/api/brands", "10.0.0.1").Code)
}

func TestRateLimitGlobal(t *testing.T) {
	cfg := limitCfg(100)
	cfg.RPS, cfg.Burst = 0.001, 1
	h := NewRateLimitMiddleware(cfg, zaptest.NewLogger(t)).Handler(okHandler)

	assert.Equal(t, http.StatusOK, hit(h, "/api/brands", "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "/api/brands", "10.0.0.2").Code)
}

func TestRateLimitDisabled(t *testing.T) {
	cfg := limitCfg(1)
	cfg.Enabled = false
	h := NewRateLimitMiddleware(cfg, zaptest.NewLogger(t)).Handler(okHandler)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit(h, "/api/brands", "10.0.0.1").Code)
	}
}

func TestRedisWindowCounter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	counter := NewRedisWindowCounter(client, 2, time.Minute)
	counter.now = func() time.Time { return time.Unix(600, 0) }
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := counter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := counter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	key := "ratelimit:10.0.0.1:10"
	assert.True(t, mr.Exists(key))
	assert.Equal(t, 2*time.Minute, mr.TTL(key))

	counter.now = func() time.Time { return time.Unix(660, 0) }
	ok, err = counter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok, "a new window starts a new count")
}

func TestRateLimitSharedCounter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := limitCfg(100)
	first := NewRateLimitMiddleware(cfg, zaptest.NewLogger(t))
	second := NewRateLimitMiddleware(cfg, zaptest.NewLogger(t))
	first.SetWindowCounter(NewRedisWindowCounter(client, 1, time.Minute))
	second.SetWindowCounter(NewRedisWindowCounter(client, 1, time.Minute))

	assert.Equal(t, http.StatusOK, hit(first.Handler(okHandler), "/api/brands", "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(second.Handler(okHandler), "/api/brands", "10.0.0.1").Code,
		"replicas share the count")
}

type brokenCounter struct{}

func (brokenCounter) Allow(context.Context, string) (bool, error) {
	return false, errors.New("connection refused")
}

func TestRateLimitFailsOverToLocal(t *testing.T) {
	rl := NewRateLimitMiddleware(limitCfg(1), zaptest.NewLogger(t))
	rl.SetWindowCounter(brokenCounter{})
	h := rl.Handler(okHandler)

	assert.Equal(t, http.StatusOK, hit(h, "/api/brands", "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "/api/brands", "10.0.0.1").Code)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:5555"
	assert.Equal(t, "192.0.2.1", ClientIP(req))

	req.Header.Set("X-Real-IP", "198.51.100.7")
	assert.Equal(t, "198.51.100.7", ClientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1")
	assert.Equal(t, "203.0.113.5", ClientIP(req))
}
