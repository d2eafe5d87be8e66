package handlers

import (
	"classifieds/internal/logger"
	"classifieds/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestIDMiddleware(), h.accessLogMiddleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints
	h.registerAPIRoutes(router)

	// WebSocket feed of the newest listings — same port
	router.GET("/ws/listings", h.listingFeed)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
		// The session token itself authorizes sign-out; no CSRF check needed.
		auth.POST("/sign-out", h.sessionMiddleware, h.signOut)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		// Browsing is public.
		api.GET("/listings", h.searchListings)
		api.GET("/listings/:id", h.getListing)
		api.GET("/categories", h.listCategories)
		api.GET("/users/:id", h.getProfile)

		// Every state-changing route requires a session and a CSRF token.
		protected := api.Group("", h.sessionMiddleware, h.csrfMiddleware)
		{
			protected.POST("/listings", h.createListing)
			protected.PUT("/listings/:id", h.updateListing)
			protected.DELETE("/listings/:id", h.deleteListing)
			protected.PUT("/listings/:id/categories", h.setListingCategories)
			protected.POST("/listings/:id/inquiries", h.addInquiry)
			protected.DELETE("/inquiries/:id", h.deleteInquiry)
		}
	}
}
