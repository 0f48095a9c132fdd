package middleware

import (
	"context"
	"net/http"
	"strings"

	"ecoclean/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// SessionAuth gates the customer routes. It verifies the identity
// provider's session token, caches the token hash in Redis to skip
// repeat signature checks, and stores userID plus the raw bearer token in
// the context so handlers can forward it to the core backend per call.
//
// This is route gating, not a security boundary: the core backend
// re-authorizes every forwarded request against the same token.
func SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		ctx := context.Background()
		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + computedHash

		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			if userID, err := authCache.Get(ctx, cacheKey).Result(); err == nil && userID != "" {
				_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
				c.Set("userID", userID)
				c.Set("sessionToken", tokenString)
				c.Next()
				return
			} else if err != nil && err != redis.Nil {
				// Cache trouble is not an auth failure; fall through to
				// full validation.
				utils.GetLogger().Sugar().Warnf("auth cache read failed: %v", err)
			}
		}

		userID, err := utils.ExtractUserIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		if authCache != nil {
			_ = authCache.Set(ctx, cacheKey, userID, utils.AuthCacheTTL).Err()
		}

		c.Set("userID", userID)
		c.Set("sessionToken", tokenString)
		c.Next()
	}
}

// SessionToken returns the bearer token the middleware stored, empty for
// guest routes.
func SessionToken(c *gin.Context) string {
	if v, ok := c.Get("sessionToken"); ok {
		if token, ok := v.(string); ok {
			return token
		}
	}
	return ""
}
