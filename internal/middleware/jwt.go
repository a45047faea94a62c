package middleware

import (
	"context"  // Context for revocation lookups
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"community_admin/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// Context keys set by the auth middlewares
const (
	UserIDKey      = "userID"      // uuid.UUID of the caller
	TokenIDKey     = "tokenID"     // revocation key of the presented token
	TokenExpiryKey = "tokenExpiry" // time.Time the token lapses
)

// RevocationChecker reports whether a token was signed out
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// JWTAuthMiddleware validates access tokens and extracts the caller's identity
func JWTAuthMiddleware(secret string, revoked RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		userID, err := claims.UserID() // Subject carries the user id
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		tokenID := utils.TokenID(claims, tokenStr)
		if revoked != nil {
			isRevoked, err := revoked.IsRevoked(c.Request.Context(), tokenID)
			if err != nil {
				logrus.WithFields(logrus.Fields{"user": userID, "error": err}).Error("revocation check failed")
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Session check unavailable"})
				return
			}
			if isRevoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session has ended, please sign in again"})
				return
			}
		}
		c.Set(UserIDKey, userID)   // Store userID in context
		c.Set(TokenIDKey, tokenID) // Used by logout
		if claims.ExpiresAt != nil {
			c.Set(TokenExpiryKey, claims.ExpiresAt.Time)
		}
		c.Next() // Proceed to the next handler
	}
}
