package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"paygate/internal/infrastructure/ratelimit"
	"paygate/internal/shared/logger"
)

// CallbackRateLimit throttles the public callback endpoint per client IP.
// When the limiter backend is unavailable the request is allowed through;
// blocking every callback over a Redis outage would lose real payments.
func CallbackRateLimit(limiter ratelimit.RateLimiter, cfg ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("callback:%s", c.ClientIP())

		allowed, err := limiter.Allow(c.Request.Context(), key, cfg)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			log.Warnw("callback rate limit exceeded", "client_ip", c.ClientIP())
			c.String(http.StatusTooManyRequests, "Too many requests")
			c.Abort()
			return
		}

		c.Next()
	}
}
