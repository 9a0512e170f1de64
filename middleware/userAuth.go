package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cyfairmaids/utils"
)

// JWTAuthCustomerMiddleware authenticates customer requests. The auth cache
// holds the hash of each customer's most recently issued token; older tokens
// for the same customer are rejected as superseded.
func JWTAuthCustomerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, role, err := utils.ExtractClaims(tokenString)
		if err != nil || subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		if role != utils.RoleCustomer {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Customer access required"})
			return
		}

		// Login primes the cache with the newest token's hash, so a
		// mismatch here means a later login replaced this session. Cache
		// infrastructure errors never block an otherwise valid token.
		if err := utils.CheckAuthSession(context.Background(), utils.GetAuthCacheClient(), subject, tokenString); err != nil {
			if errors.Is(err, utils.ErrSessionSuperseded) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session superseded"})
				return
			}
			zap.L().Warn("Auth cache check failed", zap.Error(err))
		}

		c.Set("customerID", subject)
		c.Next()
	}
}
