package ratelimit

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/charityhub/internal/pkg/response"
)

// Middleware limits requests per client IP and route, so login and form
// submissions are counted separately.
func Middleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		key := c.ClientIP() + " " + route

		limit := strconv.Itoa(limiter.Limit())

		if !limiter.Allow(key) {
			resetTime := limiter.ResetTime(key)
			retryAfter := int(math.Ceil(time.Until(resetTime).Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}

			c.Header("X-RateLimit-Limit", limit)
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", resetTime.Format(time.RFC3339))
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			response.ErrorWithData(c, http.StatusTooManyRequests, "Rate limit exceeded. Try again later.", gin.H{
				"retry_after": strconv.Itoa(retryAfter) + "s",
				"reset_time":  resetTime.Format(time.RFC3339),
				"limit":       limiter.Limit(),
				"remaining":   0,
			}, "RATE_LIMITED")
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", limit)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(limiter.Remaining(key)))
		c.Header("X-RateLimit-Reset", limiter.ResetTime(key).Format(time.RFC3339))

		c.Next()
	}
}
