// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dcoppard/gallery-backend/internal/config"
	"github.com/dcoppard/gallery-backend/internal/handlers"
	"github.com/dcoppard/gallery-backend/internal/middleware"
	"github.com/dcoppard/gallery-backend/internal/services"
	"github.com/dcoppard/gallery-backend/internal/utils"
	"github.com/dcoppard/gallery-backend/internal/viewcache"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	cache := viewcache.New()
	storageService, _ := services.NewStorageService(cfg)
	notificationService := services.NewNotificationService(cfg)

	authService := services.NewAuthService(db, cfg)
	paintingService := services.NewPaintingService(db, cache)
	submissionService := services.NewSubmissionService(paintingService, storageService)
	descriptionService := services.NewDescriptionService()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	paintingHandler := handlers.NewPaintingHandler(paintingService, submissionService, descriptionService, cfg)
	contactHandler := handlers.NewContactHandler(notificationService, paintingService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.AuditLogMiddleware(db))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
			auth.PUT("/password", middleware.AuthRequired(), authHandler.ChangePassword)
		}

		// Public painting routes
		paintings := v1.Group("/paintings")
		{
			paintings.GET("", paintingHandler.GetPaintings)
			paintings.GET("/featured", paintingHandler.GetFeaturedPaintings)
			paintings.GET("/:id", paintingHandler.GetPainting)

			// Visitor messages about one painting
			messages := paintings.Group("")
			messages.Use(middleware.MessageRateLimit())
			{
				messages.POST("/:id/inquiry", contactHandler.SendInquiry)
				messages.POST("/:id/offer", contactHandler.SendOffer)
			}
		}

		// Contact form
		v1.POST("/contact", middleware.MessageRateLimit(), contactHandler.SendContactMessage)

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.GET("/dashboard/stats", paintingHandler.GetDashboard)

			adminPaintings := admin.Group("/paintings")
			{
				adminPaintings.GET("", paintingHandler.GetAdminPaintings)
				adminPaintings.POST("", middleware.UploadRateLimit(), paintingHandler.CreatePainting)
				adminPaintings.PUT("/:id", middleware.UploadRateLimit(), paintingHandler.UpdatePainting)
				adminPaintings.DELETE("/:id", paintingHandler.DeletePainting)
				adminPaintings.POST("/price-suggestion", paintingHandler.SuggestPrice)
				adminPaintings.POST("/:id/description", paintingHandler.GenerateDescription)
			}
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}
