package middleware

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/store-ratings/internal/httperr"
)

// RateLimiter is a fixed-window counter per client IP and route kept in Redis.
type RateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	logger *slog.Logger
}

func NewRateLimiter(client *redis.Client, limit int, window time.Duration, logger *slog.Logger) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  limit,
		window: window,
		logger: logger,
	}
}

// Middleware passes everything through when no Redis client is configured
// or Redis is unreachable.
func (l *RateLimiter) Middleware(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil || l.client == nil || l.limit <= 0 {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		bucket := time.Now().UnixNano() / int64(l.window)
		key := fmt.Sprintf("ratelimit:%s:%s:%d", scope, c.ClientIP(), bucket)

		pipe := l.client.TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, l.window)
		if _, err := pipe.Exec(ctx); err != nil {
			if l.logger != nil {
				l.logger.WarnContext(ctx, "rate limiter unavailable", "error", err)
			}
			c.Next()
			return
		}

		count := incr.Val()
		remaining := int64(l.limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(l.limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(l.limit) {
			c.Header("Retry-After", strconv.Itoa(int(l.window.Seconds())))
			httperr.TooManyRequests(c, "rate_limited", "Too many requests")
			return
		}

		c.Next()
	}
}
