package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/safecity/backend/internal/controllers"
	"github.com/safecity/backend/internal/middleware"
	"github.com/safecity/backend/internal/models"
	"github.com/safecity/backend/internal/stores"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize stores
	incidentStore := stores.NewIncidentStore(db)
	userStore := stores.NewUserStore(db)
	referenceStore := stores.NewReferenceStore(db)
	notificationStore := stores.NewNotificationStore(db)

	// Initialize controllers
	authController := controllers.NewAuthController(userStore, referenceStore)
	userController := controllers.NewUserController(userStore)
	incidentController := controllers.NewIncidentController(incidentStore, notificationStore)
	notificationController := controllers.NewNotificationController(notificationStore)
	referenceController := controllers.NewReferenceController(referenceStore)

	api := r.Group("/api/v1")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
		}

		// Public reference data
		api.GET("/roles", referenceController.GetRoles)
		api.GET("/categories", referenceController.GetCategories)

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/auth/change-password", authController.ChangePassword)

			// Users
			users := protected.Group("/users")
			{
				users.GET("/me", userController.GetCurrentUser)
				users.PUT("/me", userController.UpdateCurrentUser)
				users.GET("", middleware.RequireRoles(models.RoleAdmin), userController.GetUsers)
			}

			// Incidents
			incidents := protected.Group("/incidents")
			{
				incidents.GET("", incidentController.GetIncidents)
				incidents.GET("/nearby", incidentController.GetNearby)
				incidents.GET("/:id", incidentController.GetIncident)
				incidents.POST("", incidentController.CreateIncident)
				incidents.PUT("/:id", incidentController.UpdateIncident)
				incidents.DELETE("/:id", incidentController.DeleteIncident)
			}

			// Notifications
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", notificationController.GetNotifications)
				notifications.GET("/unread-count", notificationController.GetUnreadCount)
				notifications.PUT("/read-all", notificationController.MarkAllRead)
				notifications.PUT("/:id/read", notificationController.MarkRead)
				notifications.DELETE("/:id", notificationController.DeleteNotification)
			}
		}
	}
}
