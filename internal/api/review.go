package api

import (
	"context"  // Request-scoped deadlines
	"net/http" // HTTP status codes
	"strings"  // Message casing

	"community_admin/internal/service" // Console operations

	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/google/uuid"   // Row and admin ids
)

// reviewer is the approval workflow of one submission kind
type reviewer[T any] interface {
	Approve(ctx context.Context, admin, id uuid.UUID) (*T, error)
	Reject(ctx context.Context, admin, id uuid.UUID, notes string) (*T, error)
}

// ApproveHandler approves a pending submission
func ApproveHandler[T any](wf reviewer[T], noun string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		row, err := wf.Approve(c.Request.Context(), adminID(c), id) // Single UPDATE, then reload
		if err != nil {
			fail(c, err, "Failed to approve "+noun)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": capitalize(noun) + " approved", "item": row}) // Client refetches the list
	}
}

// RejectHandler rejects a pending submission with the admin's notes
func RejectHandler[T any](wf reviewer[T], noun string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		notes, ok := bindNotes(c) // Optional body {"notes": "..."}
		if !ok {
			return
		}
		row, err := wf.Reject(c.Request.Context(), adminID(c), id, notes)
		if err != nil {
			fail(c, err, "Failed to reject "+noun) // Missing notes map to 400
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": capitalize(noun) + " rejected", "item": row})
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ListMatrimonialHandler returns the matrimonial review queue
func ListMatrimonialHandler(svc *service.MatrimonialService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.List(c.Request.Context(), service.MatrimonialFilter{
			Query:  c.Query("q"),      // Owner name or city
			Status: c.Query("status"), // Defaults to pending
			Gender: c.Query("gender"), // Case-insensitive
		})
		if err != nil {
			fail(c, err, "Failed to fetch matrimonial profiles")
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// GetMatrimonialHandler returns one profile with its owner
func GetMatrimonialHandler(svc *service.MatrimonialService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		p, err := svc.Get(c.Request.Context(), id) // Preloads the full owner
		if err != nil {
			fail(c, err, "Failed to fetch profile")
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// ListJobsHandler returns the job review queue
func ListJobsHandler(svc *service.JobService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.List(c.Request.Context(), service.JobFilter{Query: c.Query("q"), Status: c.Query("status")}) // Title or location
		if err != nil {
			fail(c, err, "Failed to fetch jobs")
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// GetJobHandler returns one job with its poster
func GetJobHandler(svc *service.JobService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		j, err := svc.Get(c.Request.Context(), id) // Preloads the poster
		if err != nil {
			fail(c, err, "Failed to fetch job")
			return
		}
		c.JSON(http.StatusOK, j)
	}
}
