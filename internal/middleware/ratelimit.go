package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/reelfind/internal/utils"
	"golang.org/x/time/rate"
)

// RateLimit rejects requests beyond the configured burst.
func RateLimit(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			utils.Error(c, http.StatusTooManyRequests, "too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
