// Package httpapi wires the Gin router for the coordination portal:
// a public read surface scoped to the active disaster, the self-service
// registration form, and the authenticated admin API.
package httpapi

import (
	"net/http"

	"dmthub/internal/httpapi/handler"
	"dmthub/internal/httpapi/middleware"
	"dmthub/internal/scope"
	"dmthub/internal/service"
	"dmthub/internal/storage"

	"github.com/gin-gonic/gin"
)

// Deps collects everything the router mounts.
type Deps struct {
	Auth          service.AuthService
	Disasters     service.DisasterService
	Registrations service.RegistrationService
	Notifications service.NotificationService
	Documents     service.DocumentService
	SourceLinks   service.SourceLinkService
	Sessions      *scope.SessionStore
	Uploads       *storage.UploadStore
	UploadDir     string
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/check-conn", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	})

	authHandler := handler.NewAuthHandler(d.Auth)
	disasterHandler := handler.NewDisasterHandler(d.Disasters)
	registrationHandler := handler.NewRegistrationHandler(d.Registrations, d.Uploads)
	notificationHandler := handler.NewNotificationHandler(d.Notifications)
	documentHandler := handler.NewDocumentHandler(d.Documents, d.Uploads)
	sourceLinkHandler := handler.NewSourceLinkHandler(d.SourceLinks)
	publicHandler := handler.NewPublicHandler(d.Disasters, d.Documents)

	api := r.Group("/api/v1")

	authHandler.RegisterRoutes(api.Group("/auth"))

	// Public surface: always scoped to the globally active disaster.
	public := api.Group("/public", middleware.PublicScope(d.Disasters))
	publicHandler.RegisterRoutes(public)
	registrationHandler.RegisterPublicRoutes(public)

	// Admin surface: JWT-protected, scoped to the session's disaster.
	admin := api.Group("/admin",
		middleware.AuthMiddleware(d.Auth),
		middleware.RequireAdmin(),
		middleware.AdminScope(d.Sessions),
	)
	disasterHandler.RegisterRoutes(admin.Group("/disasters"))
	registrationHandler.RegisterRoutes(admin.Group("/registrations"))
	notificationHandler.RegisterRoutes(admin.Group("/notifications"))
	documentHandler.RegisterRoutes(admin.Group("/documents"))
	sourceLinkHandler.RegisterRoutes(admin.Group("/source-links"))

	// Stored attachments are served straight off disk.
	r.Static("/uploads", d.UploadDir)

	return r
}
