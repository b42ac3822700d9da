package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hirecoder/backend/internal/infrastructure/ratelimit"
	"github.com/hirecoder/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// RateLimit limits requests per client IP
func RateLimit(limiter ratelimit.Limiter, logger *zap.Logger) gin.HandlerFunc {
	return RateLimitByKey(limiter, logger, func(c *gin.Context) string {
		return c.ClientIP()
	})
}

// RateLimitByKey returns a rate limiting middleware with custom key extractor.
// Limiter failures let the request through.
func RateLimitByKey(limiter ratelimit.Limiter, logger *zap.Logger, keyFunc func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision, err := limiter.Allow(c.Request.Context(), keyFunc(c))
		if err != nil {
			if logger != nil {
				logger.Warn("Rate limiter unavailable", zap.Error(err))
			}
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		if !decision.Allowed {
			c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(decision)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeRateLimited,
				"Too many requests. Please try again later.",
				GetRequestID(c),
			))
			return
		}

		c.Next()
	}
}

// retryAfterSeconds rounds up so clients never retry inside the same window
func retryAfterSeconds(d ratelimit.Decision) int {
	secs := int(d.RetryAfter.Seconds())
	if float64(secs) < d.RetryAfter.Seconds() {
		secs++
	}
	return max(secs, 1)
}
