package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/freight-ledger/backend/internal/application/adapter"
	domainerror "github.com/freight-ledger/backend/internal/domain/error"
	"github.com/freight-ledger/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 5
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute
)

// RateLimitMiddleware provides IP-based rate limiting for sensitive routes.
type RateLimitMiddleware struct {
	limiter        adapter.RateLimiter
	maxAttempts    int
	windowDuration time.Duration
}

// NewRateLimitMiddleware creates a rate limit middleware with default settings.
func NewRateLimitMiddleware(limiter adapter.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter:        limiter,
		maxAttempts:    defaultMaxAttempts,
		windowDuration: defaultWindowDuration,
	}
}

// NewRateLimitMiddlewareWithConfig creates a rate limit middleware with custom settings.
func NewRateLimitMiddlewareWithConfig(limiter adapter.RateLimiter, maxAttempts int, windowDuration time.Duration) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter:        limiter,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Limit returns a Gin middleware handler that enforces rate limiting. The
// name distinguishes counters between routes sharing the middleware.
func (m *RateLimitMiddleware) Limit(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		key := name + ":" + clientIP
		allowed, err := m.limiter.Allow(c.Request.Context(), key, m.maxAttempts, m.windowDuration)
		if err != nil {
			// Fail open: an unreachable limiter must not take auth down.
			slog.Warn("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
