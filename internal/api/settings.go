package api

import (
	"context"  // Upload deadlines
	"io"       // Streamed file bodies
	"net/http" // HTTP status codes
	"strconv"  // Query parsing
	"time"     // Backup filename date

	"community_admin/internal/domain"  // Settings and navigation
	"community_admin/internal/service" // Console operations
	"community_admin/internal/upload"  // Image checks
	"community_admin/internal/utils"   // Download filenames

	"github.com/gin-gonic/gin" // Gin web framework
)

// ImageUploader stores an image and returns its public URL
type ImageUploader interface {
	Upload(ctx context.Context, filename string, file io.Reader, folder string) (string, error)
}

// GetSettingsHandler returns the console settings
func GetSettingsHandler(st *service.SettingsStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := st.Get(c.Request.Context())
		if err != nil {
			fail(c, err, "Failed to load settings")
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

// SaveSettingsHandler replaces the console settings
func SaveSettingsHandler(st *service.SettingsStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in domain.AppSettings // Bind JSON request to struct
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		s, err := st.Save(c.Request.Context(), adminID(c), in)
		if err != nil {
			fail(c, err, "Failed to save settings")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Settings saved", "settings": s})
	}
}

// ResetSettingsHandler restores the default console settings
func ResetSettingsHandler(st *service.SettingsStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := st.Reset(c.Request.Context(), adminID(c)) // Drop the saved key
		if err != nil {
			fail(c, err, "Failed to reset settings")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Settings reset to defaults", "settings": s})
	}
}

// receiveImage validates the multipart "file" and forwards it to the uploader
func receiveImage(c *gin.Context, up ImageUploader, folder string) (string, bool) {
	fh, err := c.FormFile("file") // Multipart field "file"
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please choose a file"})
		return "", false
	}
	if err := upload.Validate(fh.Header.Get("Content-Type"), fh.Size); err != nil { // image/* up to 5MB
		fail(c, err, "Invalid image")
		return "", false
	}
	f, err := fh.Open()
	if err != nil {
		fail(c, err, "Failed to read file")
		return "", false
	}
	defer f.Close()
	url, err := up.Upload(c.Request.Context(), fh.Filename, f, folder) // Unsigned preset upload
	if err != nil {
		fail(c, err, "Failed to upload image")
		return "", false
	}
	return url, true
}

// UploadImageHandler uploads a poster or photo and returns its URL
func UploadImageHandler(up ImageUploader, folder string) gin.HandlerFunc {
	return func(c *gin.Context) {
		url, ok := receiveImage(c, up, folder)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}

// UploadQRCodeHandler uploads the UPI QR image and stores it in the settings
func UploadQRCodeHandler(up ImageUploader, st *service.SettingsStore, folder string) gin.HandlerFunc {
	return func(c *gin.Context) {
		url, ok := receiveImage(c, up, folder)
		if !ok {
			return
		}
		s, err := st.SetQRCode(c.Request.Context(), adminID(c), url) // Persist the new QR URL
		if err != nil {
			fail(c, err, "Failed to save settings")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "QR code uploaded", "url": url, "settings": s})
	}
}

// ExportDatabaseHandler downloads a JSON backup of the console tables
func ExportDatabaseHandler(ex *service.Exporter) gin.HandlerFunc {
	return func(c *gin.Context) {
		backup := ex.Export(c.Request.Context()) // Unreadable tables are omitted
		filename := utils.DatedFilename("database-backup", "json", time.Now())
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.IndentedJSON(http.StatusOK, backup) // Pretty-printed download
	}
}

// NavigationHandler returns the console sidebar
func NavigationHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"items": domain.Navigation})
	}
}

// AuditLogHandler lists the newest admin actions
func AuditLogHandler(audit *service.AuditLog) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100")) // Capped by the service
		logs, err := audit.Recent(c.Request.Context(), limit)
		if err != nil {
			fail(c, err, "Failed to fetch audit log")
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": logs})
	}
}
