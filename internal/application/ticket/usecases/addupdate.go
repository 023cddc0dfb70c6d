package usecases

import (
	"context"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/ticket/dto"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/ticket"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/db"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
)

type AddUpdateCommand struct {
	TicketID   uint
	UserID     uint
	UpdateText string
}

// AddUpdateUseCase posts a staff reply. The reply and the move to
// In Progress commit together; the customer is emailed afterwards.
type AddUpdateUseCase struct {
	ticketRepo ticket.TicketRepository
	updateRepo ticket.UpdateRepository
	txMgr      *db.TransactionManager
	notifier   Notifier
	logger     logger.Interface
}

func NewAddUpdateUseCase(
	ticketRepo ticket.TicketRepository,
	updateRepo ticket.UpdateRepository,
	txMgr *db.TransactionManager,
	notifier Notifier,
	logger logger.Interface,
) *AddUpdateUseCase {
	return &AddUpdateUseCase{
		ticketRepo: ticketRepo,
		updateRepo: updateRepo,
		txMgr:      txMgr,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *AddUpdateUseCase) Execute(ctx context.Context, cmd AddUpdateCommand) (*dto.UpdateDTO, error) {
	if cmd.UpdateText == "" {
		return nil, errors.NewValidationError("Update text cannot be empty.")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	update, err := ticket.NewUpdate(t.ID(), cmd.UserID, cmd.UpdateText)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.updateRepo.Create(txCtx, update); err != nil {
			return err
		}
		t.MarkInProgress()
		return uc.ticketRepo.Save(txCtx, t)
	})
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to add ticket update", "ticket_id", t.ID(), "error", err)
		}
		return nil, err
	}

	updateView, err := uc.updateRepo.GetView(ctx, update.ID())
	if err != nil {
		uc.logger.Errorw("failed to reload ticket update", "update_id", update.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket update added", "ticket_id", t.ID(), "update_id", update.ID(), "user_id", cmd.UserID)

	view, err := uc.ticketRepo.GetView(ctx, t.ID())
	if err != nil {
		uc.logger.Warnw("failed to load ticket for reply email", "ticket_id", t.ID(), "error", err)
	} else {
		uc.notifier.Replied(ctx, view, updateView)
	}

	result := dto.ToUpdateDTO(updateView)
	result.TicketStatus = t.Status().String()
	return result, nil
}
