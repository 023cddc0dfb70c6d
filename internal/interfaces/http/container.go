package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/ticket/notification"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/auth"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/config"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/metrics"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/permission"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/interfaces/http/middleware"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/db"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases and
// handlers. It wires everything together and releases what it opened in
// Shutdown.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter

	// Infrastructure services
	txMgr    *db.TransactionManager
	jwtSvc   *auth.JWTService
	hasher   *auth.BcryptPasswordHasher
	enforcer *permission.Enforcer
	metrics  *metrics.Metrics
	notifier *notification.Notifier
}

// NewContainer creates a Container with every dependency wired. It fails
// only when a component that cannot degrade (policy, templates) is broken.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, Repositories, Services
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Use cases
	c.initUseCases()

	// Section 3: Handlers and middlewares
	c.initHandlers()

	return c, nil
}

// Engine returns the gin engine with routes registered by SetupRoutes.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown closes the redis client. The database is owned by the caller.
func (c *Container) Shutdown(ctx context.Context) {
	if c.redis == nil {
		return
	}
	done := make(chan struct{})
	go func() {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		c.log.Warnw("redis close timed out")
	}
}

func (c *Container) connectRedis() *redis.Client {
	if !c.cfg.Redis.Enabled {
		c.log.Infow("redis disabled, rate limiting is off")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.Addr,
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		c.log.Warnw("redis unreachable, rate limiting is off", "addr", c.cfg.Redis.Addr, "error", err)
		_ = client.Close()
		return nil
	}

	c.log.Infow("redis connected", "addr", c.cfg.Redis.Addr)
	return client
}
