package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/ratelimit"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/interfaces/http/handlers"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	RateLimiter    *middleware.RateLimiter
	LoginPerMinute int
}

func SetupAuthRoutes(api *gin.RouterGroup, config *AuthRouteConfig) {
	api.POST("/login",
		config.RateLimiter.LimitFailures("login", ratelimit.Rule{Limit: config.LoginPerMinute, Window: time.Minute}),
		config.AuthHandler.Login)
}
