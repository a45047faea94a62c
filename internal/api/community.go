package api

import (
	"net/http" // HTTP status codes
	"time"     // Date parsing

	"community_admin/internal/domain"  // Fixed option lists
	"community_admin/internal/service" // Console operations

	"github.com/gin-gonic/gin" // Gin web framework
)

func donorFilter(c *gin.Context) service.BloodDonorFilter {
	return service.BloodDonorFilter{
		Query:        c.Query("q"),            // Name, phone or city
		BloodGroup:   c.Query("blood_group"),  // Exact group, "all" disables
		City:         c.Query("city"),         // Exact city, "all" disables
		Availability: c.Query("availability"), // available or unavailable
	}
}

// ListBloodDonorsHandler returns the donor registry view
func ListBloodDonorsHandler(svc *service.BloodDonorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.List(c.Request.Context(), donorFilter(c))
		if err != nil {
			fail(c, err, "Failed to fetch blood donors")
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// BloodDonorOptionsHandler returns the values of the donor selects
func BloodDonorOptionsHandler(svc *service.BloodDonorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cities, err := svc.Cities(c.Request.Context())
		if err != nil {
			fail(c, err, "Failed to fetch cities")
			return
		}
		c.JSON(http.StatusOK, gin.H{"cities": cities, "blood_groups": domain.BloodGroups}) // Cities are distinct and sorted
	}
}

// ExportBloodDonorsHandler downloads the filtered donors as CSV
func ExportBloodDonorsHandler(svc *service.BloodDonorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.List(c.Request.Context(), donorFilter(c))
		if err != nil {
			fail(c, err, "Failed to export blood donors")
			return
		}
		sendCSV(c, "blood-donors", service.DonorCSVHeaders, service.DonorCSVRows(res.Items)) // Filtered rows only
	}
}

// ToggleDonorAvailabilityHandler flips is_available
func ToggleDonorAvailabilityHandler(svc *service.BloodDonorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		d, err := svc.ToggleAvailability(c.Request.Context(), adminID(c), id) // Invert is_available
		if err != nil {
			fail(c, err, "Failed to update donor")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Availability updated", "item": d})
	}
}

type lastDonationRequest struct {
	Date *string `json:"last_donation_date"` // YYYY-MM-DD, null clears it
}

// SetLastDonationHandler records a donor's last donation date
func SetLastDonationHandler(svc *service.BloodDonorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var req lastDonationRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var date *time.Time // nil clears the date
		if req.Date != nil && *req.Date != "" {
			t, err := time.Parse("2006-01-02", *req.Date)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
				return
			}
			date = &t
		}
		d, err := svc.SetLastDonation(c.Request.Context(), adminID(c), id, date) // Availability untouched
		if err != nil {
			fail(c, err, "Failed to update donor")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Last donation date updated", "item": d})
	}
}

// DeleteBloodDonorHandler removes a donor entry
func DeleteBloodDonorHandler(svc *service.BloodDonorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), adminID(c), id); err != nil {
			fail(c, err, "Failed to delete donor")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Donor removed"})
	}
}

// ListPostHoldersHandler returns office bearers in display order
func ListPostHoldersHandler(svc *service.PostHolderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			fail(c, err, "Failed to fetch post holders")
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": list, "total": len(list)}) // Ordered by display_order
	}
}

// DesignationsHandler lists the accepted designations
func DesignationsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"designations": domain.Designations}) // Fixed list
	}
}

// CreatePostHolderHandler adds an office bearer
func CreatePostHolderHandler(svc *service.PostHolderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in service.PostHolderInput // Bind JSON request to struct
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		ph, err := svc.Create(c.Request.Context(), adminID(c), in)
		if err != nil {
			fail(c, err, "Failed to add post holder") // Bad designation or term maps to 400
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Post holder added", "item": ph})
	}
}

// UpdatePostHolderHandler edits an office bearer
func UpdatePostHolderHandler(svc *service.PostHolderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var in service.PostHolderInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		ph, err := svc.Update(c.Request.Context(), adminID(c), id, in)
		if err != nil {
			fail(c, err, "Failed to update post holder")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Post holder updated", "item": ph})
	}
}

// DeletePostHolderHandler removes an office bearer
func DeletePostHolderHandler(svc *service.PostHolderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), adminID(c), id); err != nil {
			fail(c, err, "Failed to delete post holder")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Post holder removed"})
	}
}

// ListContactRequestsHandler returns the contact request log with counts
func ListContactRequestsHandler(svc *service.ContactRequestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.List(c.Request.Context(), c.Query("status")) // Read-only view
		if err != nil {
			fail(c, err, "Failed to fetch contact requests")
			return
		}
		c.JSON(http.StatusOK, res)
	}
}
