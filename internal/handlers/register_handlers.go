package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/datum-redsoft/expense-backend/cmd/docs"
	portssvc "github.com/datum-redsoft/expense-backend/internal/core/ports/services"
	"github.com/datum-redsoft/expense-backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIRoutes(r, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the /api group and delegates to specific entity route registrations
func setupAPIRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	api := r.Group("/api")

	registerAnalysisRoutes(api, services.AnalysisSvc)
	registerUserRoutes(api, services.UserSvc)
	registerCompanyRoutes(api, services.CompanySvc)
	registerCountryRoutes(api, services.CountrySvc)
	registerCategoryRoutes(api, services.CategorySvc)
	registerCostCenterRoutes(api, services.CostCenterSvc)
	registerCardRoutes(api, services.CardSvc)
	registerInvoiceRoutes(api, services.InvoiceSvc)
	registerInvoiceFieldRoutes(api, services.InvoiceFieldSvc)
	registerDocumentRoutes(api, services.ArchiveSvc)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
