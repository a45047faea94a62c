package middleware

import (
	"context"  // Context for the lookup
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // User IDs
	"github.com/sirupsen/logrus" // Structured logging
)

// AdminChecker reports whether a user may use the console
type AdminChecker interface {
	IsAdmin(ctx context.Context, id uuid.UUID) (bool, error)
}

// AdminOnlyMiddleware checks the user's admin flag from the database on each request
func AdminOnlyMiddleware(admins AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := c.Get(UserIDKey) // Get userID from context
		id, isID := userID.(uuid.UUID)
		if !ok || !isID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		isAdmin, err := admins.IsAdmin(c.Request.Context(), id) // Fetch the flag from the users table
		if err != nil {
			logrus.WithFields(logrus.Fields{"user": id, "error": err}).Warn("admin lookup failed")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next() // If admin, proceed to the next handler
	}
}
