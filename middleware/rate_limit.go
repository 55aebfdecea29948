package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EkeminiThompson/ecommerce/config"
)

const (
	rateLimitPeriod = 1 * time.Minute
	rateLimitCount  = 5
)

// RateLimiter caps auth-endpoint traffic per client IP using Redis
// INCR/EXPIRE. When Redis is unavailable the limiter is open.
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.RedisClient == nil {
			c.Next()
			return
		}

		key := "rate_limit:" + c.ClientIP()
		count, err := config.RedisClient.Incr(c.Request.Context(), key).Result()
		if err != nil {
			// Redis trouble should not block logins.
			c.Next()
			return
		}
		if count == 1 {
			config.RedisClient.Expire(c.Request.Context(), key, rateLimitPeriod)
		}
		if count > rateLimitCount {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests"})
			return
		}
		c.Next()
	}
}
