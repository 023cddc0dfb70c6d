package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/docs"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/interfaces/http/middleware"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/interfaces/http/routes"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/utils"
)

// APIPrefix is the mount point of every JSON endpoint.
const APIPrefix = "/api"

// SetupRoutes installs the middleware chain and registers all routes.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.AccessLog(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())
	if c.cfg.Metrics.Enabled {
		c.engine.Use(c.metrics.Middleware())
	}

	c.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	c.engine.GET("/health", c.hdlrs.health.Health)
	if c.cfg.Metrics.Enabled {
		path := c.cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		c.engine.GET(path, gin.WrapH(c.metrics.Handler()))
	}

	api := c.engine.Group(APIPrefix)

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    c.hdlrs.auth,
		RateLimiter:    c.rateLimiter,
		LoginPerMinute: c.cfg.RateLimit.LoginPerMinute,
	})

	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		UserHandler:          c.hdlrs.user,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupCompanyRoutes(api, &routes.CompanyRouteConfig{
		CompanyHandler:       c.hdlrs.company,
		AssetHandler:         c.hdlrs.asset,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupAssetRoutes(api, &routes.AssetRouteConfig{
		AssetHandler:         c.hdlrs.asset,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:        c.hdlrs.ticket,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
		RateLimiter:          c.rateLimiter,
		WebhookPerMinute:     c.cfg.RateLimit.WebhookPerMinute,
	})

	c.engine.NoRoute(func(ctx *gin.Context) {
		utils.ErrorResponse(ctx, http.StatusNotFound, "Not found.")
	})
}
