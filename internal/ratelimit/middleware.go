package ratelimit

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"biolink-server/internal/apierrors"
	"biolink-server/internal/observability"
)

// Middleware limits public intake requests per client IP and slug
func (s *Service) Middleware(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		key := fmt.Sprintf("%s:%s", observability.GetRealClientIP(c), c.Param("slug"))
		result, err := s.Check(ctx, key, limit)
		if err != nil {
			s.logger.Error(ctx, "rate limit check failed", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", result.RetryAfterMs/1000))
			warnCtx := observability.WithFields(ctx,
				observability.Field{Key: "limit", Value: result.Limit},
				observability.Field{Key: "retry_after_ms", Value: result.RetryAfterMs},
			)
			s.logger.Warn(warnCtx, "rate limit exceeded")
			apierrors.TooManyRequests(c, "rate limit exceeded")
			c.Abort()
			return
		}

		c.Next()
	}
}
