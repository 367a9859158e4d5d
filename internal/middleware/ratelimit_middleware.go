package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/psepay/pse_api/internal/config"
	"github.com/psepay/pse_api/internal/utils"
)

// RateCounter counts requests per key within a fixed window. Implemented by
// cache.RedisClient in production.
type RateCounter interface {
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// RateLimitMiddleware enforces a fixed-window per-client-IP request limit.
// Counters live behind RateCounter (Redis in production) so the limit holds
// across replicas. When the counter store is unreachable the request is let
// through; availability of the API wins over strictness of the limit.
func RateLimitMiddleware(counter RateCounter, cfg *config.RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s", c.ClientIP())

		count, err := counter.IncrWithTTL(c.Request.Context(), key, cfg.Window)
		if err != nil {
			log.Warn().Err(err).Msg("rate limit counter unavailable")
			c.Next()
			return
		}

		remaining := int64(cfg.Requests) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Requests))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(cfg.Requests) {
			utils.Error(c, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "Too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
