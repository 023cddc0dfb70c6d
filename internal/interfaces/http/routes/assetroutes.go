package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/permission"
	assethandlers "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/interfaces/http/handlers/asset"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/interfaces/http/middleware"
)

type AssetRouteConfig struct {
	AssetHandler         *assethandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupAssetRoutes(api *gin.RouterGroup, config *AssetRouteConfig) {
	perm := config.PermissionMiddleware

	assets := api.Group("/assets")
	assets.Use(config.AuthMiddleware.RequireAuth())
	{
		assets.POST("",
			perm.RequirePermission(permission.ResourceAsset, permission.ActionCreate),
			config.AssetHandler.CreateAsset)
		assets.POST("/bulk",
			perm.RequirePermission(permission.ResourceAsset, permission.ActionCreate),
			config.AssetHandler.BulkImport)

		assets.GET("/:id",
			perm.RequirePermission(permission.ResourceAsset, permission.ActionRead),
			config.AssetHandler.GetAsset)
		assets.PUT("/:id",
			perm.RequirePermission(permission.ResourceAsset, permission.ActionUpdate),
			config.AssetHandler.UpdateAsset)
		assets.DELETE("/:id",
			perm.RequirePermission(permission.ResourceAsset, permission.ActionDelete),
			config.AssetHandler.DeleteAsset)
	}
}
