package api

import (
	"net/http" // HTTP status codes

	"community_admin/internal/service" // Console operations

	"github.com/gin-gonic/gin" // Gin web framework
)

// donationFilter reads the list query; ok is false once a 400 was written
func donationFilter(c *gin.Context) (service.DonationFilter, bool) {
	from, ok := parseDate(c, "from") // Inclusive start day
	if !ok {
		return service.DonationFilter{}, false
	}
	to, ok := parseDate(c, "to") // Inclusive end day
	if !ok {
		return service.DonationFilter{}, false
	}
	return service.DonationFilter{
		Query:        c.Query("q"),
		From:         from,
		To:           to,
		Verification: c.Query("verification"),
	}, true
}

// ListDonationsHandler returns donations with stats over the filtered view
func ListDonationsHandler(svc *service.DonationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		f, ok := donationFilter(c)
		if !ok {
			return
		}
		res, err := svc.List(c.Request.Context(), f)
		if err != nil {
			fail(c, err, "Failed to fetch donations")
			return
		}
		c.JSON(http.StatusOK, res) // items, total, filtered, stats
	}
}

// MonthlyDonationsHandler returns the last six months of totals
func MonthlyDonationsHandler(svc *service.DonationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		series, err := svc.Monthly(c.Request.Context())
		if err != nil {
			fail(c, err, "Failed to fetch donation analytics")
			return
		}
		c.JSON(http.StatusOK, gin.H{"months": series})
	}
}

// ExportDonationsHandler downloads the filtered donations as CSV
func ExportDonationsHandler(svc *service.DonationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		f, ok := donationFilter(c)
		if !ok {
			return
		}
		res, err := svc.List(c.Request.Context(), f)
		if err != nil {
			fail(c, err, "Failed to export donations")
			return
		}
		sendCSV(c, "donations", service.DonationCSVHeaders, service.DonationCSVRows(res.Items))
	}
}

// VerificationRequest sets or clears a donation's verification
type VerificationRequest struct {
	Verified *bool  `json:"verified" binding:"required"` // Target state
	Notes    string `json:"notes"`                       // Optional admin notes
}

// SetDonationVerificationHandler verifies or unverifies a donation
func SetDonationVerificationHandler(svc *service.DonationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var req VerificationRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		d, err := svc.SetVerification(c.Request.Context(), adminID(c), id, *req.Verified, req.Notes)
		if err != nil {
			fail(c, err, "Failed to update donation")
			return
		}
		msg := "Donation unverified"
		if d.IsVerified {
			msg = "Donation verified"
		}
		c.JSON(http.StatusOK, gin.H{"message": msg, "item": d})
	}
}

// DeleteDonationHandler permanently deletes a donation
func DeleteDonationHandler(svc *service.DonationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), adminID(c), id); err != nil {
			fail(c, err, "Failed to delete donation")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Donation deleted"})
	}
}
