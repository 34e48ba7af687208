package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/mchandler/agency-site-api/internal/config"
	"github.com/mchandler/agency-site-api/pkg/logger"
)

type RateLimitMiddleware struct {
	redis  *redis.Client
	config *config.Config
	logger *logger.Logger
}

func NewRateLimitMiddleware(redis *redis.Client, config *config.Config, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redis:  redis,
		config: config,
		logger: logger,
	}
}

// IPRateLimit limits anonymous traffic per client IP over a one-minute
// window. Redis failures fail open; a broken cache must not take the site
// down.
func (m *RateLimitMiddleware) IPRateLimit() gin.HandlerFunc {
	return m.limit("global", func() int { return m.config.GlobalRateLimit })
}

// SubmissionRateLimit applies a much tighter per-IP budget to the form
// endpoints.
func (m *RateLimitMiddleware) SubmissionRateLimit() gin.HandlerFunc {
	return m.limit("submission", func() int { return m.config.SubmissionRateLimit })
}

func (m *RateLimitMiddleware) limit(scope string, limitFn func() int) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := limitFn()
		key := fmt.Sprintf("rate_limit:%s:%s", scope, c.ClientIP())

		current, err := m.redis.Get(c.Request.Context(), key).Int()
		if err != nil && err != redis.Nil {
			m.logger.Error("Redis error in rate limiting", err)
			c.Next()
			return
		}

		if current >= limit {
			c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Minute).Unix(), 10))

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded",
				"limit": limit,
				"reset": time.Now().Add(time.Minute).Unix(),
			})
			c.Abort()
			return
		}

		pipe := m.redis.Pipeline()
		pipe.Incr(c.Request.Context(), key)
		pipe.Expire(c.Request.Context(), key, time.Minute)
		if _, err := pipe.Exec(c.Request.Context()); err != nil {
			m.logger.Error("Redis pipeline error in rate limiting", err)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(limit-current-1))
		c.Next()
	}
}
