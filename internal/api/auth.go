package api

import (
	"net/http" // HTTP status codes
	"time"     // Token expiry

	"community_admin/internal/middleware" // Context keys
	"community_admin/internal/service"    // Console operations

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// MeHandler returns the signed-in admin
func MeHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := users.Get(c.Request.Context(), adminID(c)) // Fetch the caller's user row
		if err != nil {
			fail(c, err, "Failed to load session")
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": u})
	}
}

// LogoutHandler revokes the presented token until it would have expired
func LogoutHandler(sessions *service.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenID := c.GetString(middleware.TokenIDKey) // Set by JWTAuthMiddleware
		expiry := time.Now().Add(24 * time.Hour)      // Fallback for tokens without exp
		if v, ok := c.Get(middleware.TokenExpiryKey); ok {
			if t, ok := v.(time.Time); ok {
				expiry = t
			}
		}
		if err := sessions.Revoke(c.Request.Context(), tokenID, expiry); err != nil {
			fail(c, err, "Failed to sign out")
			return
		}
		logrus.WithFields(logrus.Fields{"admin": adminID(c)}).Info("admin signed out")
		c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
	}
}

// AccountDeletionHandler files a public account deletion request
func AccountDeletionHandler(svc *service.DeletionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.DeletionInput // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number is required"})
			return
		}
		r, err := svc.Submit(c.Request.Context(), c.ClientIP(), req)
		if err != nil {
			fail(c, err, "Failed to submit request")
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Your deletion request has been received and will be processed soon",
			"id":      r.ID,
		})
	}
}
