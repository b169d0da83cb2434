package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"raffle-admin-panel/internal/common/logger"
	"raffle-admin-panel/internal/store"
)

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery
		if raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		logger.Info().
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("Request processed")
	}
}

// RateLimitGuard short-circuits every panel operation once the backend has
// answered 429. The flag stays up until restart.
func RateLimitGuard(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if users.TooManyRequests() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				gin.H{"message": "Too many requests, please try again later"})
			return
		}
		c.Next()
	}
}

func RequireAuth(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !users.IsAuth() {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"message": "Unauthorized: sign in first"})
			return
		}
		c.Next()
	}
}

func RequireAdmin(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := users.User()
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"message": "Unauthorized: sign in first"})
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden,
				gin.H{"message": "Admin access required"})
			return
		}
		c.Next()
	}
}
