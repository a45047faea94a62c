package api

import (
	"time" // Request timeout

	"community_admin/internal/domain"     // Review models
	"community_admin/internal/middleware" // Auth, CORS, logging
	"community_admin/internal/service"    // Console operations

	"github.com/gin-gonic/gin" // Gin web framework
)

// Deps is everything the router needs
type Deps struct {
	Services       *service.Services
	Uploader       ImageUploader
	JWTSecret      string
	RequestTimeout time.Duration
	UploadFolder   string // base folder for uploaded images
	TrustedProxies []string
}

// NewRouter builds the gin engine with every route registered
func NewRouter(d Deps) (*gin.Engine, error) {
	r := gin.New() // Middleware is chosen explicitly below
	r.Use(gin.Recovery(), middleware.Logger(), middleware.CORS(), middleware.Timeout(d.RequestTimeout))
	if err := r.SetTrustedProxies(d.TrustedProxies); err != nil {
		return nil, err
	}
	s := d.Services

	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.POST("/account-deletion", AccountDeletionHandler(s.Deletions)) // Public form, rate limited

	admin := r.Group("/admin") // Admin routes group
	admin.Use(middleware.JWTAuthMiddleware(d.JWTSecret, s.Sessions), middleware.AdminOnlyMiddleware(s.Users))

	admin.GET("/me", MeHandler(s.Users))
	admin.POST("/logout", LogoutHandler(s.Sessions))
	admin.GET("/navigation", NavigationHandler())
	admin.GET("/dashboard", DashboardHandler(s.Dashboard))
	admin.GET("/audit-logs", AuditLogHandler(s.Audit))

	users := admin.Group("/users")
	users.GET("", ListUsersHandler(s.Users))
	users.GET("/:id", GetUserHandler(s.Users))
	users.POST("/:id/verification", ToggleUserVerificationHandler(s.Users))
	users.POST("/:id/admin", ToggleUserAdminHandler(s.Users))
	users.DELETE("/:id", DeleteUserHandler(s.Users))

	matrimonial := admin.Group("/matrimonial")
	matrimonial.GET("", ListMatrimonialHandler(s.Matrimonial))
	matrimonial.GET("/:id", GetMatrimonialHandler(s.Matrimonial))
	matrimonial.POST("/:id/approve", ApproveHandler[domain.MatrimonialProfile](s.Matrimonial, "profile"))
	matrimonial.POST("/:id/reject", RejectHandler[domain.MatrimonialProfile](s.Matrimonial, "profile"))

	jobs := admin.Group("/jobs")
	jobs.GET("", ListJobsHandler(s.Jobs))
	jobs.GET("/:id", GetJobHandler(s.Jobs))
	jobs.POST("/:id/approve", ApproveHandler[domain.Job](s.Jobs, "job"))
	jobs.POST("/:id/reject", RejectHandler[domain.Job](s.Jobs, "job"))

	events := admin.Group("/events")
	events.GET("", ListEventsHandler(s.Events))
	events.GET("/types", EventTypesHandler())
	events.POST("", CreateEventHandler(s.Events))
	events.GET("/:id", GetEventHandler(s.Events))
	events.PUT("/:id", UpdateEventHandler(s.Events))
	events.POST("/:id/approve", ApproveHandler[domain.Event](s.Events, "event"))
	events.POST("/:id/reject", RejectHandler[domain.Event](s.Events, "event"))
	events.POST("/:id/featured", ToggleEventFeaturedHandler(s.Events))
	events.POST("/:id/visibility", ToggleEventVisibilityHandler(s.Events))
	events.DELETE("/:id", DeleteEventHandler(s.Events))

	donors := admin.Group("/blood-donors")
	donors.GET("", ListBloodDonorsHandler(s.BloodDonors))
	donors.GET("/options", BloodDonorOptionsHandler(s.BloodDonors))
	donors.GET("/export", ExportBloodDonorsHandler(s.BloodDonors))
	donors.POST("/:id/availability", ToggleDonorAvailabilityHandler(s.BloodDonors))
	donors.PUT("/:id/last-donation", SetLastDonationHandler(s.BloodDonors))
	donors.DELETE("/:id", DeleteBloodDonorHandler(s.BloodDonors))

	donations := admin.Group("/donations")
	donations.GET("", ListDonationsHandler(s.Donations))
	donations.GET("/monthly", MonthlyDonationsHandler(s.Donations))
	donations.GET("/export", ExportDonationsHandler(s.Donations))
	donations.PATCH("/:id/verification", SetDonationVerificationHandler(s.Donations))
	donations.DELETE("/:id", DeleteDonationHandler(s.Donations))

	holders := admin.Group("/post-holders")
	holders.GET("", ListPostHoldersHandler(s.PostHolders))
	holders.GET("/designations", DesignationsHandler())
	holders.GET("/candidates", CandidatesHandler(s.Users))
	holders.POST("", CreatePostHolderHandler(s.PostHolders))
	holders.PUT("/:id", UpdatePostHolderHandler(s.PostHolders))
	holders.DELETE("/:id", DeletePostHolderHandler(s.PostHolders))

	admin.GET("/contact-requests", ListContactRequestsHandler(s.ContactRequests))

	deletions := admin.Group("/deletion-requests")
	deletions.GET("", ListDeletionRequestsHandler(s.Deletions))
	deletions.POST("/:id/approve", ProcessDeletionRequestHandler(s.Deletions, true))
	deletions.POST("/:id/reject", ProcessDeletionRequestHandler(s.Deletions, false))

	admin.POST("/import/preview", ImportPreviewHandler(s.Importer))
	admin.POST("/import", ImportMembersHandler(s.Importer))

	admin.GET("/settings", GetSettingsHandler(s.Settings))
	admin.PUT("/settings", SaveSettingsHandler(s.Settings))
	admin.DELETE("/settings", ResetSettingsHandler(s.Settings))
	admin.POST("/settings/qr-code", UploadQRCodeHandler(d.Uploader, s.Settings, d.UploadFolder+"/qr-codes"))
	admin.POST("/uploads/image", UploadImageHandler(d.Uploader, d.UploadFolder))
	admin.GET("/export", ExportDatabaseHandler(s.Exporter))

	return r, nil
}
