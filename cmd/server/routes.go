package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sbennell/Asset-System/internal/handlers"
	"github.com/sbennell/Asset-System/internal/middleware"
	"github.com/sbennell/Asset-System/internal/models"
	"github.com/sbennell/Asset-System/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS(svc.cfg.Server.CORSOrigins))

	db := models.GetDB()

	healthHandler := handlers.NewHealthHandler()
	r.GET("/health", healthHandler.CheckHealth)

	authHandler := handlers.NewAuthHandler(db, svc.cfg)
	loginLimiter := middleware.NewRateLimiter(5, 10)

	api := r.Group("/api")
	{
		// Public auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", loginLimiter.Middleware(), authHandler.Login)
		}

		// Everything else requires a valid token. Write operations are
		// recorded in the activity log.
		protected := api.Group("")
		protected.Use(middleware.AuthRequired(), middleware.AuditLog())
		{
			protected.GET("/auth/me", authHandler.GetCurrentUser)
			protected.POST("/auth/logout", authHandler.Logout)
			protected.POST("/auth/change-password", authHandler.ChangePassword)

			// Dashboard
			dashboardHandler := handlers.NewDashboardHandler(db)
			protected.GET("/dashboard/stats", dashboardHandler.GetStats)

			// Assets
			assetHandler := handlers.NewAssetHandler(db)
			protected.GET("/assets", assetHandler.List)
			protected.GET("/assets/:id", assetHandler.GetByID)
			protected.POST("/assets", assetHandler.Create)
			protected.PUT("/assets/:id", assetHandler.Update)
			protected.DELETE("/assets/:id", assetHandler.Delete)
			protected.POST("/assets/bulk-update", assetHandler.BulkUpdate)

			// Labels
			labelHandler := handlers.NewLabelHandler(db, &svc.cfg.Label)
			protected.GET("/assets/:id/label/preview", labelHandler.Preview)
			protected.GET("/assets/:id/label/download", labelHandler.Download)
			protected.POST("/assets/:id/label/print", labelHandler.Print)
			protected.GET("/label-settings", labelHandler.GetSettings)
			protected.PUT("/label-settings", labelHandler.UpdateSettings)

			// Lookup tables
			lookupHandler := handlers.NewLookupHandler(db)
			protected.GET("/categories", lookupHandler.ListCategories)
			protected.POST("/categories", lookupHandler.CreateCategory)
			protected.PUT("/categories/:id", lookupHandler.UpdateCategory)
			protected.DELETE("/categories/:id", lookupHandler.DeleteCategory)
			protected.GET("/manufacturers", lookupHandler.ListManufacturers)
			protected.POST("/manufacturers", lookupHandler.CreateManufacturer)
			protected.PUT("/manufacturers/:id", lookupHandler.UpdateManufacturer)
			protected.DELETE("/manufacturers/:id", lookupHandler.DeleteManufacturer)
			protected.GET("/suppliers", lookupHandler.ListSuppliers)
			protected.POST("/suppliers", lookupHandler.CreateSupplier)
			protected.PUT("/suppliers/:id", lookupHandler.UpdateSupplier)
			protected.DELETE("/suppliers/:id", lookupHandler.DeleteSupplier)
			protected.GET("/locations", lookupHandler.ListLocations)
			protected.POST("/locations", lookupHandler.CreateLocation)
			protected.PUT("/locations/:id", lookupHandler.UpdateLocation)
			protected.DELETE("/locations/:id", lookupHandler.DeleteLocation)

			// Saved filters
			filterHandler := handlers.NewSavedFilterHandler(db)
			protected.GET("/filters", filterHandler.List)
			protected.POST("/filters", filterHandler.Create)
			protected.DELETE("/filters/:id", filterHandler.Delete)

			// Settings
			settingHandler := handlers.NewSettingHandler(db)
			protected.GET("/settings/:key", settingHandler.Get)
			protected.PUT("/settings/:key", settingHandler.Set)
		}

		// Admin only routes
		admin := api.Group("")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			logHandler := handlers.NewActivityLogHandler(db)
			admin.GET("/activity-logs", logHandler.List)
			admin.GET("/activity-logs/modules", logHandler.GetModules)
			admin.GET("/activity-logs/retention", logHandler.GetRetention)
			admin.PUT("/activity-logs/retention", logHandler.SetRetention)
			admin.POST("/activity-logs/cleanup", logHandler.Cleanup)
		}
	}
}
