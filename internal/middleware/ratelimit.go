package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	limit "github.com/yangxikun/gin-limit-by-key"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Idle per-client limiters are dropped after this long.
const limiterTTL = time.Hour

// RateLimit allows perMinute requests per client IP with bursts up to burst.
// A non-positive perMinute disables limiting.
func RateLimit(perMinute, burst int, logger *zap.Logger) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst <= 0 {
		burst = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	every := time.Minute / time.Duration(perMinute)

	return limit.NewRateLimiter(func(c *gin.Context) string {
		return c.ClientIP()
	}, func(c *gin.Context) (*rate.Limiter, time.Duration) {
		return rate.NewLimiter(rate.Every(every), burst), limiterTTL
	}, func(c *gin.Context) {
		logger.Info("RateLimit(): request rejected", zap.String("client", c.ClientIP()), zap.String("path", c.FullPath()))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, slow down"})
	})
}
