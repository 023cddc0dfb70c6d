package http

import (
	assetUsecases "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/asset/usecases"
	companyUsecases "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/company/usecases"
	ticketUsecases "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/ticket/usecases"
	userUsecases "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/user/usecases"
)

// allUseCases holds every use case instance, grouped by domain.
type allUseCases struct {
	// User & Auth
	login      *userUsecases.LoginUseCase
	createUser *userUsecases.CreateUserUseCase
	listUsers  *userUsecases.ListUsersUseCase
	deleteUser *userUsecases.DeleteUserUseCase

	// Company
	createCompany *companyUsecases.CreateCompanyUseCase
	updateCompany *companyUsecases.UpdateCompanyUseCase
	listCompanies *companyUsecases.ListCompaniesUseCase
	deleteCompany *companyUsecases.DeleteCompanyUseCase

	// Asset
	createAsset       *assetUsecases.CreateAssetUseCase
	getAsset          *assetUsecases.GetAssetUseCase
	listCompanyAssets *assetUsecases.ListCompanyAssetsUseCase
	updateAsset       *assetUsecases.UpdateAssetUseCase
	deleteAsset       *assetUsecases.DeleteAssetUseCase
	bulkImport        *assetUsecases.BulkImportUseCase
	exportAssets      *assetUsecases.ExportAssetsUseCase

	// Ticket
	createTicket *ticketUsecases.CreateTicketUseCase
	updateTicket *ticketUsecases.UpdateTicketUseCase
	addUpdate    *ticketUsecases.AddUpdateUseCase
	getTicket    *ticketUsecases.GetTicketUseCase
	listTickets  *ticketUsecases.ListTicketsUseCase
	deleteTicket *ticketUsecases.DeleteTicketUseCase
	ingestEmail  *ticketUsecases.IngestEmailUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	log := c.log

	c.ucs = &allUseCases{
		login:      userUsecases.NewLoginUseCase(r.user, c.hasher, c.jwtSvc, log),
		createUser: userUsecases.NewCreateUserUseCase(r.user, c.hasher, log),
		listUsers:  userUsecases.NewListUsersUseCase(r.user, log),
		deleteUser: userUsecases.NewDeleteUserUseCase(r.user, log),

		createCompany: companyUsecases.NewCreateCompanyUseCase(r.company, log),
		updateCompany: companyUsecases.NewUpdateCompanyUseCase(r.company, log),
		listCompanies: companyUsecases.NewListCompaniesUseCase(r.company, log),
		deleteCompany: companyUsecases.NewDeleteCompanyUseCase(r.company, log),

		createAsset:       assetUsecases.NewCreateAssetUseCase(r.asset, log),
		getAsset:          assetUsecases.NewGetAssetUseCase(r.asset),
		listCompanyAssets: assetUsecases.NewListCompanyAssetsUseCase(r.asset, r.company, log),
		updateAsset:       assetUsecases.NewUpdateAssetUseCase(r.asset, log),
		deleteAsset:       assetUsecases.NewDeleteAssetUseCase(r.asset, log),
		bulkImport:        assetUsecases.NewBulkImportUseCase(r.asset, r.company, c.txMgr, log),
		exportAssets:      assetUsecases.NewExportAssetsUseCase(r.asset, r.company, log),

		createTicket: ticketUsecases.NewCreateTicketUseCase(r.ticket, r.company, c.txMgr, c.notifier, log),
		updateTicket: ticketUsecases.NewUpdateTicketUseCase(r.ticket, r.user, c.notifier, log),
		addUpdate:    ticketUsecases.NewAddUpdateUseCase(r.ticket, r.ticketUpdate, c.txMgr, c.notifier, log),
		getTicket:    ticketUsecases.NewGetTicketUseCase(r.ticket, r.ticketUpdate, log),
		listTickets:  ticketUsecases.NewListTicketsUseCase(r.ticket, log),
		deleteTicket: ticketUsecases.NewDeleteTicketUseCase(r.ticket, log),
		ingestEmail: ticketUsecases.NewIngestEmailUseCase(
			r.ticket, r.ticketUpdate, r.company, r.user, c.txMgr, c.notifier, c.cfg.Tickets, log,
		),
	}
}
