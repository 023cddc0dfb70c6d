package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/permission"
	assethandlers "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/interfaces/http/handlers/asset"
	companyhandlers "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/interfaces/http/handlers/company"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/interfaces/http/middleware"
)

type CompanyRouteConfig struct {
	CompanyHandler       *companyhandlers.Handler
	AssetHandler         *assethandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupCompanyRoutes(api *gin.RouterGroup, config *CompanyRouteConfig) {
	perm := config.PermissionMiddleware

	companies := api.Group("/companies")
	companies.Use(config.AuthMiddleware.RequireAuth())
	{
		companies.GET("",
			perm.RequirePermission(permission.ResourceCompany, permission.ActionRead),
			config.CompanyHandler.ListCompanies)
		companies.POST("",
			perm.RequirePermission(permission.ResourceCompany, permission.ActionCreate),
			config.CompanyHandler.CreateCompany)

		// Company-scoped asset views
		companies.GET("/:id/assets",
			perm.RequirePermission(permission.ResourceAsset, permission.ActionRead),
			config.AssetHandler.ListCompanyAssets)
		companies.GET("/:id/assets/export",
			perm.RequirePermission(permission.ResourceAsset, permission.ActionRead),
			config.AssetHandler.ExportAssets)

		companies.PUT("/:id",
			perm.RequirePermission(permission.ResourceCompany, permission.ActionUpdate),
			config.CompanyHandler.UpdateCompany)
		companies.DELETE("/:id",
			perm.RequirePermission(permission.ResourceCompany, permission.ActionDelete),
			config.CompanyHandler.DeleteCompany)
	}
}
