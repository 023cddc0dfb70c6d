package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/permission"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/ratelimit"
	tickethandlers "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/interfaces/http/handlers/ticket"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler        *tickethandlers.TicketHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimiter          *middleware.RateLimiter
	WebhookPerMinute     int
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	perm := config.PermissionMiddleware

	// The inbound mail provider has no bearer token.
	api.POST("/tickets/email-webhook",
		config.RateLimiter.Limit("email-webhook", ratelimit.Rule{Limit: config.WebhookPerMinute, Window: time.Minute}),
		config.TicketHandler.EmailWebhook)

	tickets := api.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.POST("",
			perm.RequirePermission(permission.ResourceTicket, permission.ActionCreate),
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			perm.RequirePermission(permission.ResourceTicket, permission.ActionRead),
			config.TicketHandler.ListTickets)

		tickets.POST("/:id/updates",
			perm.RequirePermission(permission.ResourceTicketUpdate, permission.ActionCreate),
			config.TicketHandler.AddUpdate)

		tickets.GET("/:id",
			perm.RequirePermission(permission.ResourceTicket, permission.ActionRead),
			config.TicketHandler.GetTicket)
		tickets.PUT("/:id",
			perm.RequirePermission(permission.ResourceTicket, permission.ActionUpdate),
			config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id",
			perm.RequirePermission(permission.ResourceTicket, permission.ActionDelete),
			config.TicketHandler.DeleteTicket)
	}
}
