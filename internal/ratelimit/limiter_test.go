package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outfitlab/ensemble/internal/monitoring"
)

func newFallbackLimiter(config Config) *RateLimiter {
	redisClient := &RedisClient{enabled: false}
	return NewRateLimiter(redisClient, config, monitoring.NewMetrics())
}

func TestRateLimiterFallbackMode(t *testing.T) {
	limiter := newFallbackLimiter(Config{
		IPLimitPerMin:        10,
		RecommendLimitPerMin: 5,
		BurstMultiplier:      1,
	})

	ctx := context.Background()

	// Burst capacity is limit * multiplier; the requests past it are blocked
	allowed := 0
	blocked := 0
	for i := 0; i < 25; i++ {
		result, err := limiter.AllowIP(ctx, "10.0.0.1")
		require.NoError(t, err)
		if result.Allowed {
			allowed++
		} else {
			blocked++
			assert.Greater(t, result.RetryAfter, time.Duration(0))
		}
		assert.Equal(t, 10, result.Limit)
	}

	assert.GreaterOrEqual(t, allowed, 10)
	assert.Greater(t, blocked, 0)
}

func TestRateLimiterBurstCapacity(t *testing.T) {
	limiter := newFallbackLimiter(Config{
		IPLimitPerMin:        5,
		RecommendLimitPerMin: 5,
		BurstMultiplier:      2,
	})

	ctx := context.Background()

	// With burst multiplier of 2, we should allow roughly 10 requests initially
	allowedCount := 0
	for i := 0; i < 20; i++ {
		result, err := limiter.AllowIP(ctx, "10.0.0.2")
		require.NoError(t, err)
		if result.Allowed {
			allowedCount++
		}
	}

	assert.GreaterOrEqual(t, allowedCount, 5, "Should allow at least limit amount")
	assert.LessOrEqual(t, allowedCount, 12, "Should not exceed burst + small margin")
}

func TestRateLimiterIndependentIPs(t *testing.T) {
	limiter := newFallbackLimiter(Config{
		IPLimitPerMin:        3,
		RecommendLimitPerMin: 3,
		BurstMultiplier:      1,
	})

	ctx := context.Background()

	// Different IPs have independent budgets
	for _, ip := range []string{"192.168.0.1", "192.168.0.2", "192.168.0.3"} {
		for i := 0; i < 3; i++ {
			result, err := limiter.AllowIP(ctx, ip)
			require.NoError(t, err)
			assert.True(t, result.Allowed, "IP %s request %d should be allowed", ip, i+1)
		}
	}
}

func TestRateLimiterEndpointLimit(t *testing.T) {
	limiter := newFallbackLimiter(DefaultConfig())

	ctx := context.Background()

	// Endpoint limits are keyed separately from the global IP limit
	seen := false
	for i := 0; i < 30; i++ {
		result, err := limiter.AllowEndpoint(ctx, "/recommendations", "10.1.1.1", 5)
		require.NoError(t, err)
		assert.Equal(t, 5, result.Limit)
		if !result.Allowed {
			seen = true
			break
		}
	}
	assert.True(t, seen, "endpoint budget should run out before 30 requests")

	// Global IP budget for the same IP is untouched
	result, err := limiter.AllowIP(ctx, "10.1.1.1")
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}

func TestRateLimiterStats(t *testing.T) {
	limiter := newFallbackLimiter(DefaultConfig())

	ctx := context.Background()
	_, _ = limiter.AllowIP(ctx, "10.2.2.2")

	stats := limiter.GetStats()
	assert.False(t, stats["redis_enabled"].(bool))
	assert.GreaterOrEqual(t, stats["fallback_limiters"].(int), 1)
	assert.Contains(t, stats, "blocks")
}

func TestRateLimiterConcurrency(t *testing.T) {
	limiter := newFallbackLimiter(DefaultConfig())

	ctx := context.Background()

	done := make(chan bool, 50)
	for i := 0; i < 50; i++ {
		i := i
		go func() {
			ip := fmt.Sprintf("172.16.0.%d", i%8)
			for j := 0; j < 10; j++ {
				_, err := limiter.AllowIP(ctx, ip)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	for i := 0; i < 50; i++ {
		<-done
	}
}

func TestIPRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := newFallbackLimiter(Config{
		IPLimitPerMin:        2,
		RecommendLimitPerMin: 2,
		BurstMultiplier:      1,
	})

	router := gin.New()
	router.Use(limiter.IPRateLimitMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	var lastStatus int
	blocked := false
	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.3.3.3:1234"
		router.ServeHTTP(w, req)

		lastStatus = w.Code
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
		if w.Code == http.StatusTooManyRequests {
			blocked = true
			assert.NotEmpty(t, w.Header().Get("Retry-After"))
			break
		}
	}

	assert.True(t, blocked, "middleware should eventually return 429, last status %d", lastStatus)
}
