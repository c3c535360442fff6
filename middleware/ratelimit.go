package middleware

import (
	"net/http"
	"strconv"

	"saapaadu-api/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit caps requests through the group it is attached to. Used on the
// auth endpoints so credential guessing burns out quickly.
func RateLimit(r rate.Limit, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(r, burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please try again later."})
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthRateLimit builds the limiter for signup/login from AUTH_RATE_LIMIT
// (requests per second, default 5).
func AuthRateLimit() gin.HandlerFunc {
	rps, err := strconv.ParseFloat(config.GetEnv("AUTH_RATE_LIMIT", "5"), 64)
	if err != nil || rps <= 0 {
		rps = 5
	}
	return RateLimit(rate.Limit(rps), int(rps)*2)
}
