package api

import (
	"net/http" // HTTP status codes

	"community_admin/internal/domain"  // Event types
	"community_admin/internal/service" // Console operations

	"github.com/gin-gonic/gin" // Gin web framework
)

// ListEventsHandler returns the events view
func ListEventsHandler(svc *service.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.List(c.Request.Context(), service.EventFilter{
			Query:  c.Query("q"),      // Title or poster name
			Status: c.Query("status"), // Defaults to pending
			Type:   c.Query("type"),   // "announcement" selects announcements
		})
		if err != nil {
			fail(c, err, "Failed to fetch events")
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// GetEventHandler returns one event
func GetEventHandler(svc *service.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		ev, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			fail(c, err, "Failed to fetch event")
			return
		}
		c.JSON(http.StatusOK, ev)
	}
}

// CreateEventHandler publishes an admin-authored event
func CreateEventHandler(svc *service.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in service.EventInput // Bind JSON request to struct
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		ev, err := svc.Create(c.Request.Context(), adminID(c), in)
		if err != nil {
			fail(c, err, "Failed to create event")
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Event created", "item": ev}) // Published and visible
	}
}

// UpdateEventHandler edits an event
func UpdateEventHandler(svc *service.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var in service.EventInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		ev, err := svc.Update(c.Request.Context(), adminID(c), id, in) // Status is left as is
		if err != nil {
			fail(c, err, "Failed to update event")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Event updated", "item": ev})
	}
}

// ToggleEventFeaturedHandler flips is_featured
func ToggleEventFeaturedHandler(svc *service.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		ev, err := svc.ToggleFeatured(c.Request.Context(), adminID(c), id) // Invert is_featured
		if err != nil {
			fail(c, err, "Failed to update event")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Event updated", "item": ev})
	}
}

// ToggleEventVisibilityHandler flips is_visible
func ToggleEventVisibilityHandler(svc *service.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		ev, err := svc.ToggleVisibility(c.Request.Context(), adminID(c), id) // Invert is_visible
		if err != nil {
			fail(c, err, "Failed to update event")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Event updated", "item": ev})
	}
}

// DeleteEventHandler permanently deletes an event
func DeleteEventHandler(svc *service.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), adminID(c), id); err != nil { // Hard delete
			fail(c, err, "Failed to delete event")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
	}
}

// EventTypesHandler lists the accepted event types
func EventTypesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"event_types": domain.EventTypes}) // Fixed list
	}
}
