package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/pratikw008/blog-rest-api/internal/rest/response"
)

// RateLimit rejects requests above rps (with the given burst) with 429. rps <= 0 disables it.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := rate.NewLimiter(rate.Limit(rps), max(burst, 1))
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				response.NewErrorDetails(http.StatusTooManyRequests, "rate limit exceeded", c.Request.URL.Path))
			return
		}
		c.Next()
	}
}
