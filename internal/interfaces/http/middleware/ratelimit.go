package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adminkit/internal/infrastructure/ratelimit"
	"adminkit/internal/shared/logger"
	"adminkit/internal/shared/utils"
)

// RateLimit enforces a per-IP limit on the wrapped routes. The limiter is
// shared across instances through Redis; when it is unreachable the request
// is allowed so an outage never locks everyone out.
func RateLimit(limiter ratelimit.RateLimiter, cfg ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP(), cfg)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "client_ip", c.ClientIP(), "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
