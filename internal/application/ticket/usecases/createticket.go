package usecases

import (
	"context"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/ticket/dto"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/company"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/ticket"
	vo "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/ticket/valueobjects"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/db"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
)

type CreateTicketCommand struct {
	CompanyID     uint
	UserID        uint
	Title         string
	Description   string
	Priority      string
	CustomerEmail string
	AssetIDs      []uint
}

type CreateTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	companyRepo company.Repository
	txMgr       *db.TransactionManager
	notifier    Notifier
	logger      logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	companyRepo company.Repository,
	txMgr *db.TransactionManager,
	notifier Notifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:  ticketRepo,
		companyRepo: companyRepo,
		txMgr:       txMgr,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	if cmd.CompanyID == 0 || cmd.Title == "" || cmd.Description == "" {
		return nil, errors.NewValidationError("Company, title, and description are required.")
	}

	priority, err := vo.ParsePriorityOrDefault(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := ticket.NewTicket(cmd.CompanyID, cmd.UserID, cmd.Title, cmd.Description, cmd.CustomerEmail, priority, cmd.AssetIDs)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.companyRepo.Exists(ctx, cmd.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to check company", "company_id", cmd.CompanyID, "error", err)
		return nil, err
	}
	if !exists {
		return nil, errors.NewNotFoundError("Company not found.")
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ticketRepo.Create(txCtx, t)
	})
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to create ticket", "company_id", cmd.CompanyID, "error", err)
		}
		return nil, err
	}

	view, err := uc.ticketRepo.GetView(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to reload ticket", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created",
		"ticket_id", t.ID(),
		"company_id", t.CompanyID(),
		"user_id", t.UserID(),
		"assets", len(t.AssetIDs()),
	)

	uc.notifier.TicketReceived(ctx, view)

	return dto.ToTicketDTO(view), nil
}
