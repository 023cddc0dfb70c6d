package http

import (
	"fmt"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/ticket/notification"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/auth"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/email"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/metrics"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/permission"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/ratelimit"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/interfaces/http/middleware"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/authorization"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/db"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/services/markdown"
)

// initInfrastructure connects redis and builds repositories and the
// infrastructure services the use cases depend on.
func (c *Container) initInfrastructure() error {
	c.redis = c.connectRedis()
	c.repos = newRepositories(c.db)
	c.txMgr = db.NewTransactionManager(c.db)

	c.hasher = auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)
	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessTTL())

	enforcer, err := permission.NewEnforcer(c.log)
	if err != nil {
		return fmt.Errorf("failed to build permission enforcer: %w", err)
	}
	for _, role := range []authorization.UserRole{authorization.RoleAdmin, authorization.RoleUser} {
		rules, err := enforcer.PermissionsForRole(role)
		if err != nil {
			return err
		}
		if len(rules) == 0 {
			return fmt.Errorf("permission policy grants nothing to role %s", role)
		}
		c.log.Debugw("permission policy loaded", "role", role, "rules", len(rules))
	}
	c.enforcer = enforcer

	c.metrics = metrics.New()

	mailer := email.NewMailer(c.cfg.Email, c.log)
	notifier, err := notification.NewNotifier(
		mailer,
		markdown.NewMarkdownService(),
		c.metrics,
		c.cfg.Email.SendTimeout(),
		c.log,
	)
	if err != nil {
		return fmt.Errorf("failed to build ticket notifier: %w", err)
	}
	c.notifier = notifier

	var limiter ratelimit.RateLimiter
	if c.redis != nil {
		limiter = ratelimit.NewRedisRateLimiter(c.redis)
	}
	c.rateLimiter = middleware.NewRateLimiter(limiter, c.log)

	return nil
}
