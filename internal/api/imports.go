package api

import (
	"net/http" // HTTP status codes

	"community_admin/internal/service" // Console operations

	"github.com/gin-gonic/gin" // Gin web framework
)

// ImportPreviewHandler parses an uploaded spreadsheet without writing anything
func ImportPreviewHandler(im *service.Importer) gin.HandlerFunc {
	return func(c *gin.Context) {
		fh, err := c.FormFile("file") // Multipart field "file"
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please choose a file"})
			return
		}
		f, err := fh.Open()
		if err != nil {
			fail(c, err, "Failed to read file")
			return
		}
		defer f.Close()                      // Release the temp file
		p, err := im.Preview(fh.Filename, f) // Format follows the extension
		if err != nil {
			fail(c, err, "Failed to parse file") // Unsupported or malformed files map to 400
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// ImportRequest carries the previewed members to import
type ImportRequest struct {
	Members []service.Member `json:"members"`
}

// ImportMembersHandler imports members row by row and reports the tally
func ImportMembersHandler(im *service.Importer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ImportRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		res, err := im.Import(c.Request.Context(), adminID(c), req.Members) // Row by row, no rollback
		if err != nil {
			fail(c, err, "Failed to import members")
			return
		}
		c.JSON(http.StatusOK, res) // success, failed, first errors
	}
}
