package api

import (
	"net/http" // HTTP status codes

	"community_admin/internal/service" // Console operations

	"github.com/gin-gonic/gin" // Gin web framework
)

// ListDeletionRequestsHandler returns the deletion queue with counts
func ListDeletionRequestsHandler(svc *service.DeletionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.List(c.Request.Context(), service.DeletionFilter{Query: c.Query("q"), Status: c.Query("status")}) // Phone or email, pending by default
		if err != nil {
			fail(c, err, "Failed to fetch deletion requests")
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// ProcessDeletionRequestHandler approves or rejects a request. An approval
// that could not fully purge the account still answers 200 with the outcome.
func ProcessDeletionRequestHandler(svc *service.DeletionService, approve bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		notes, ok := bindNotes(c) // Stored as admin_notes
		if !ok {
			return
		}
		out, err := svc.Process(c.Request.Context(), adminID(c), id, approve, notes) // Status first, then the purge
		if err != nil {
			fail(c, err, "Failed to process deletion request")
			return
		}
		msg := "Request rejected" // Message shown by the console
		switch {
		case approve && out.Error != "":
			msg = "Request approved, but account deletion failed: " + out.Error
		case approve:
			msg = "Request approved and account deleted"
		}
		c.JSON(http.StatusOK, gin.H{"message": msg, "outcome": out}) // Per-table purge results included
	}
}
