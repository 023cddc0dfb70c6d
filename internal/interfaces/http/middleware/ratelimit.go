package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/ratelimit"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/utils"
)

// RateLimiter caps requests per client IP. A nil limiter or a disabled rule
// lets everything through, and so does a failing backend.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		logger:  logger,
	}
}

// Limit enforces rule per client IP. scope separates the counters of
// different endpoints.
func (rl *RateLimiter) Limit(scope string, rule ratelimit.Rule) gin.HandlerFunc {
	return rl.limit(scope, rule, false)
}

// LimitFailures is Limit for credential checks: a successful response
// clears the client's counter, so only failed attempts accumulate.
func (rl *RateLimiter) LimitFailures(scope string, rule ratelimit.Rule) gin.HandlerFunc {
	return rl.limit(scope, rule, true)
}

func (rl *RateLimiter) limit(scope string, rule ratelimit.Rule, resetOnSuccess bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.limiter == nil || rule.Limit <= 0 {
			c.Next()
			return
		}

		key := scope + ":" + c.ClientIP()
		allowed, err := rl.limiter.Allow(c.Request.Context(), key, rule)
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable, allowing request", "scope", scope, "error", err)
			c.Next()
			return
		}

		if !allowed {
			rl.logger.Warnw("rate limit exceeded", "scope", scope, "client_ip", c.ClientIP())
			utils.ErrorResponse(c, http.StatusTooManyRequests, "Too many requests, please try again later.")
			c.Abort()
			return
		}

		c.Next()

		if resetOnSuccess && c.Writer.Status() < http.StatusMultipleChoices {
			if err := rl.limiter.Reset(c.Request.Context(), key); err != nil {
				rl.logger.Warnw("failed to reset rate limit", "scope", scope, "error", err)
			}
		}
	}
}
