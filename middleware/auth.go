package middleware

import (
	"context"
	"net/http"
	"strings"

	userRepo "avira/database/repository/user"
	"avira/services/user"
	"avira/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// JWTAuthMiddleware guards endpoints that require an authenticated caller.
// The bearer token must validate and its hash must match the active
// session (auth cache first, user record as fallback), so revoked tokens
// stop working immediately.
func JWTAuthMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		if !sessionValid(c.Request.Context(), repo, userID, computedHash) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or revoked"})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

func sessionValid(ctx context.Context, repo userRepo.UserRepository, userID, tokenHash string) bool {
	cached, err := utils.GetAuthCacheClient().Get(ctx, user.SessionKey(userID)).Result()
	if err == nil {
		return cached == tokenHash
	}
	if err != redis.Nil {
		utils.GetLogger().Warn("auth cache unavailable, falling back to database")
	}

	u, err := repo.GetByID(userID)
	if err != nil || u == nil {
		return false
	}
	return u.TokenHash == tokenHash
}
