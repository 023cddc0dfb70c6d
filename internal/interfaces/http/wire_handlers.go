package http

import (
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/interfaces/http/handlers"
	assetHandlers "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/interfaces/http/handlers/asset"
	companyHandlers "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/interfaces/http/handlers/company"
	ticketHandlers "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/interfaces/http/handlers/ticket"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/interfaces/http/middleware"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	health  *handlers.HealthHandler
	auth    *handlers.AuthHandler
	user    *handlers.UserHandler
	company *companyHandlers.Handler
	asset   *assetHandlers.Handler
	ticket  *ticketHandlers.TicketHandler
}

func (c *Container) initHandlers() {
	u := c.ucs
	log := c.log

	var pinger handlers.Pinger
	if sqlDB, err := c.db.DB(); err == nil {
		pinger = sqlDB
	}

	c.hdlrs = &allHandlers{
		health:  handlers.NewHealthHandler(pinger),
		auth:    handlers.NewAuthHandler(u.login, log),
		user:    handlers.NewUserHandler(u.createUser, u.listUsers, u.deleteUser, log),
		company: companyHandlers.NewHandler(u.createCompany, u.updateCompany, u.listCompanies, u.deleteCompany, log),
		asset: assetHandlers.NewHandler(
			u.createAsset, u.getAsset, u.listCompanyAssets, u.updateAsset,
			u.deleteAsset, u.bulkImport, u.exportAssets, log,
		),
		ticket: ticketHandlers.NewTicketHandler(
			u.createTicket, u.updateTicket, u.addUpdate, u.getTicket,
			u.listTickets, u.deleteTicket, u.ingestEmail, log,
		),
	}

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, log)
}
