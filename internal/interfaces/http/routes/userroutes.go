package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/permission"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/interfaces/http/handlers"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler          *handlers.UserHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupUserRoutes(api *gin.RouterGroup, config *UserRouteConfig) {
	perm := config.PermissionMiddleware

	users := api.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		users.GET("",
			perm.RequirePermission(permission.ResourceUser, permission.ActionRead),
			config.UserHandler.ListUsers)
		users.POST("",
			perm.RequirePermission(permission.ResourceUser, permission.ActionCreate),
			config.UserHandler.CreateUser)
		users.DELETE("/:id",
			perm.RequirePermission(permission.ResourceUser, permission.ActionDelete),
			config.UserHandler.DeleteUser)
	}
}
