package api

import (
	"net/http" // HTTP status codes

	"community_admin/internal/service" // Console operations

	"github.com/gin-gonic/gin" // Gin web framework
)

// DashboardHandler returns the overview counts, charts and recent activity
func DashboardHandler(dash *service.Dashboard) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := dash.Load(c.Request.Context()) // All queries run concurrently
		if err != nil {
			fail(c, err, "Failed to load dashboard")
			return
		}
		c.JSON(http.StatusOK, stats) // Rendered once everything resolved
	}
}

// ListUsersHandler returns every user with the filtered view
func ListUsersHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := users.List(c.Request.Context(), service.UserFilter{
			Query:        c.Query("q"),            // Name, phone or email
			Verification: c.Query("verification"), // all, verified, unverified
			Role:         c.Query("role"),         // all, admin, user
		})
		if err != nil {
			fail(c, err, "Failed to fetch users")
			return
		}
		c.JSON(http.StatusOK, res) // items, total, filtered
	}
}

// GetUserHandler returns one user
func GetUserHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c) // Path id must be a UUID
		if !ok {
			return
		}
		u, err := users.Get(c.Request.Context(), id)
		if err != nil {
			fail(c, err, "Failed to fetch user")
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// ToggleUserVerificationHandler flips a user's verified flag
func ToggleUserVerificationHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		u, err := users.ToggleVerification(c.Request.Context(), adminID(c), id)
		if err != nil {
			fail(c, err, "Failed to update user")
			return
		}
		msg := "User unverified"
		if u.IsVerified {
			msg = "User verified"
		}
		c.JSON(http.StatusOK, gin.H{"message": msg, "user": u})
	}
}

// ToggleUserAdminHandler grants or revokes console access
func ToggleUserAdminHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		if id == adminID(c) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot change your own admin role"}) // Avoid locking yourself out
			return
		}
		u, err := users.ToggleAdmin(c.Request.Context(), adminID(c), id)
		if err != nil {
			fail(c, err, "Failed to update user role")
			return
		}
		msg := "Admin access removed"
		if u.IsAdmin {
			msg = "Admin access granted"
		}
		c.JSON(http.StatusOK, gin.H{"message": msg, "user": u})
	}
}

// DeleteUserHandler permanently deletes a user
func DeleteUserHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		if err := users.Delete(c.Request.Context(), adminID(c), id); err != nil {
			fail(c, err, "Failed to delete user")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
	}
}

// CandidatesHandler lists verified users that can be linked to a post holder
func CandidatesHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := users.Candidates(c.Request.Context())
		if err != nil {
			fail(c, err, "Failed to fetch users")
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": list})
	}
}
