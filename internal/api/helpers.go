package api

import (
	"context"  // Deadline errors
	"errors"   // Error matching
	"net/http" // HTTP status codes
	"time"     // Date parameters

	"community_admin/internal/middleware"  // Context keys
	"community_admin/internal/service"     // Service errors
	"community_admin/internal/spreadsheet" // Import errors
	"community_admin/internal/upload"      // Upload errors
	"community_admin/internal/utils"       // CSV writer

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // Row IDs
	"github.com/sirupsen/logrus" // Structured logging
)

// adminID returns the authenticated caller
func adminID(c *gin.Context) uuid.UUID {
	id, _ := c.Get(middleware.UserIDKey)
	uid, _ := id.(uuid.UUID)
	return uid
}

// parseID reads the :id path parameter, answering 400 when it is malformed
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// parseDate reads a YYYY-MM-DD query parameter; empty means unset
func parseDate(c *gin.Context, key string) (*time.Time, bool) {
	v := c.Query(key)
	if v == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + key + " date, expected YYYY-MM-DD"})
		return nil, false
	}
	return &t, true
}

// statusFor maps a service error to its HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrRejectionReasonRequired),
		errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrNoImportData),
		errors.Is(err, spreadsheet.ErrUnsupportedFormat),
		errors.Is(err, spreadsheet.ErrMalformed),
		errors.Is(err, upload.ErrNotImage),
		errors.Is(err, upload.ErrTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, service.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, upload.ErrNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// fail logs err and answers with its mapped status. Client errors carry the
// error text; server errors carry msg.
func fail(c *gin.Context, err error, msg string) {
	status := statusFor(err)
	entry := logrus.WithFields(logrus.Fields{
		"path":   c.FullPath(),
		"id":     c.Param("id"),
		"admin":  adminID(c),
		"status": status,
		"error":  err,
	})
	if status >= http.StatusInternalServerError {
		entry.Error(msg)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	entry.Warn(msg)
	c.JSON(status, gin.H{"error": err.Error()})
}

// sendCSV streams a dated CSV attachment
func sendCSV(c *gin.Context, prefix string, headers []string, rows [][]string) {
	filename := utils.DatedFilename(prefix, "csv", time.Now())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)
	if err := utils.WriteCSV(c.Writer, headers, rows); err != nil {
		logrus.WithFields(logrus.Fields{"file": filename, "error": err}).Error("csv export failed")
	}
}

// notesRequest carries the optional admin notes of review actions
type notesRequest struct {
	Notes string `json:"notes"`
}

// bindNotes reads an optional {"notes": ...} body
func bindNotes(c *gin.Context) (string, bool) {
	var req notesRequest
	if c.Request.ContentLength == 0 {
		return "", true
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return "", false
	}
	return req.Notes, true
}
