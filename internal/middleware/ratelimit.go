package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/radiusdt/wellwave-hub/internal/config"
	"github.com/radiusdt/wellwave-hub/internal/metrics"
)

// WindowCounter counts requests per key in fixed windows shared between
// replicas.
type WindowCounter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimitMiddleware applies a global token bucket and a per-client
// limit. The per-client limit uses a WindowCounter when one is set and an
// in-process token bucket per IP otherwise.
type RateLimitMiddleware struct {
	cfg     config.RateLimitConfig
	logger  *zap.Logger
	metrics *metrics.Metrics
	global  *rate.Limiter
	shared  WindowCounter

	mu         sync.RWMutex
	ipLimiters map[string]*rate.Limiter
}

// NewRateLimitMiddleware creates a new rate limiting middleware.
func NewRateLimitMiddleware(cfg config.RateLimitConfig, logger *zap.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		cfg:        cfg,
		logger:     logger,
		global:     rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
		ipLimiters: make(map[string]*rate.Limiter),
	}
}

func (rl *RateLimitMiddleware) SetMetrics(m *metrics.Metrics) {
	rl.metrics = m
}

// SetWindowCounter moves the per-client limit to c.
func (rl *RateLimitMiddleware) SetWindowCounter(c WindowCounter) {
	rl.shared = c
}

// Handler wraps an http.Handler with rate limiting.
func (rl *RateLimitMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.cfg.Enabled || r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}

		if !rl.global.Allow() {
			rl.reject(w, r, "global")
			return
		}

		ip := ClientIP(r)
		if !rl.allowClient(r.Context(), ip) {
			rl.reject(w, r, "ip")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimitMiddleware) allowClient(ctx context.Context, ip string) bool {
	if rl.shared != nil {
		ok, err := rl.shared.Allow(ctx, ip)
		if err == nil {
			return ok
		}
		// Fail over to the local limiter while the counter store is down.
		rl.logger.Warn("shared rate limit unavailable", zap.Error(err))
	}
	return rl.getIPLimiter(ip).Allow()
}

// getIPLimiter returns or creates a rate limiter for the given IP.
func (rl *RateLimitMiddleware) getIPLimiter(ip string) *rate.Limiter {
	rl.mu.RLock()
	limiter, exists := rl.ipLimiters[ip]
	rl.mu.RUnlock()

	if exists {
		return limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, exists = rl.ipLimiters[ip]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(rl.cfg.PerIPRPS), rl.cfg.PerIPBurst)
	rl.ipLimiters[ip] = limiter
	return limiter
}

func (rl *RateLimitMiddleware) reject(w http.ResponseWriter, r *http.Request, scope string) {
	rl.logger.Warn("rate limit exceeded",
		zap.String("scope", scope),
		zap.String("path", r.URL.Path),
		zap.String("remote_addr", r.RemoteAddr),
	)
	if rl.metrics != nil {
		rl.metrics.RecordRateLimitHit(scope)
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Retry-After", "1")
	w.WriteHeader(http.StatusTooManyRequests)
	w.Write([]byte(`{"error":"rate limit exceeded"}`))
}

// CleanupIPLimiters drops every per-IP limiter. Call it periodically.
func (rl *RateLimitMiddleware) CleanupIPLimiters() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.ipLimiters = make(map[string]*rate.Limiter)
	rl.logger.Debug("cleaned up IP rate limiters")
}

// ClientIP extracts the client IP, honouring proxy headers.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// RedisWindowCounter is a fixed-window counter in Redis: one key per
// client and window, expiring after two windows.
type RedisWindowCounter struct {
	client redis.Cmdable
	limit  int64
	window time.Duration
	prefix string
	now    func() time.Time
}

// NewRedisWindowCounter allows limit requests per client per window.
func NewRedisWindowCounter(client redis.Cmdable, limit int, window time.Duration) *RedisWindowCounter {
	return &RedisWindowCounter{
		client: client,
		limit:  int64(limit),
		window: window,
		prefix: "ratelimit:",
		now:    time.Now,
	}
}

func (c *RedisWindowCounter) Allow(ctx context.Context, key string) (bool, error) {
	slot := c.now().UnixNano() / int64(c.window)
	k := c.prefix + key + ":" + strconv.FormatInt(slot, 10)

	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.PExpire(ctx, k, 2*c.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit counter: %w", err)
	}
	return incr.Val() <= c.limit, nil
}
