package middleware

import (
	"net/http"
	"time"

	"tvshow_admin/internal/apperror"
	"tvshow_admin/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimitMessage is the fixed body sent to throttled clients
const RateLimitMessage = "Too many requests from this IP, please try again later."

// RateLimitMiddleware allows limit requests per client address per window.
// Excess requests get a plain-text 429 with no retry guidance.
func RateLimitMiddleware(store ratelimit.Store, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := store.Hit(c.Request.Context(), c.ClientIP(), window)
		if err != nil {
			_ = c.Error(apperror.Internal("Rate limit check failed", err))
			c.Abort()
			return
		}
		if count > int64(limit) {
			c.String(http.StatusTooManyRequests, RateLimitMessage)
			c.Abort()
			return
		}
		c.Next()
	}
}
