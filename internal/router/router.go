package router

import (
	"time"

	"artroad/config"
	"artroad/internal/domain"
	"artroad/internal/handler"
	"artroad/internal/middleware"
	"artroad/internal/repository"
	"artroad/internal/service"
	"artroad/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	// Skip gin.Logger() to reduce log noise; use gin.Default() if you need request logging
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	serviceRepo := repository.NewServiceRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	adminUserRepo := repository.NewAdminUserRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, adminUserRepo)

	// Handlers
	serviceHandler := handler.NewServiceHandler(serviceRepo)
	galleryHandler := handler.NewGalleryHandler(galleryRepo)
	leadHandler := handler.NewLeadHandler(leadRepo)
	teamHandler := handler.NewTeamHandler(teamRepo)
	companyHandler := handler.NewCompanyHandler(companyRepo)
	settingHandler := handler.NewSettingHandler(settingRepo)
	adminHandler := handler.NewAdminHandler(statsRepo, authSvc)
	uploadHandler := handler.NewUploadHandler(cloud)

	authMw := middleware.AuthRequired(&cfg.JWT)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", adminHandler.Login)
			authGroup.POST("/refresh", adminHandler.Refresh)
		}

		// Public reads for the site pages; lead POST is the contact form.
		api.GET("/services", serviceHandler.Get)
		api.GET("/gallery", galleryHandler.Get)
		api.GET("/team", teamHandler.Get)
		api.GET("/trusted-companies", companyHandler.Get)
		api.GET("/settings", settingHandler.Get)
		api.POST("/leads", leadHandler.Create)

		// Everything that mutates content, plus lead reads, needs the admin token.
		admin := api.Group("")
		admin.Use(authMw, middleware.RequireRole(domain.RoleAdmin))
		{
			admin.POST("/services", serviceHandler.Create)
			admin.PUT("/services", serviceHandler.Update)
			admin.DELETE("/services", serviceHandler.Delete)

			admin.POST("/gallery", galleryHandler.Create)
			admin.PUT("/gallery", galleryHandler.Update)
			admin.DELETE("/gallery", galleryHandler.Delete)

			admin.GET("/leads", leadHandler.Get)
			admin.PUT("/leads", leadHandler.Update)
			admin.DELETE("/leads", leadHandler.Delete)

			admin.POST("/team", teamHandler.Create)
			admin.PUT("/team", teamHandler.Update)
			admin.DELETE("/team", teamHandler.Delete)

			admin.POST("/trusted-companies", companyHandler.Create)
			admin.PUT("/trusted-companies", companyHandler.Update)
			admin.DELETE("/trusted-companies", companyHandler.Delete)

			admin.POST("/settings", settingHandler.Create)
			admin.PUT("/settings", settingHandler.Upsert)

			admin.GET("/admin/stats", adminHandler.Stats)
			admin.POST("/admin/upload", uploadHandler.UploadImage)
		}
	}

	return r
}
