package usecases

import (
	"context"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/ticket"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
)

type DeleteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

// Execute removes the ticket. Its updates and asset links go with it.
func (uc *DeleteTicketUseCase) Execute(ctx context.Context, ticketID uint) error {
	if err := uc.ticketRepo.Delete(ctx, ticketID); err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to delete ticket", "ticket_id", ticketID, "error", err)
		}
		return err
	}
	uc.logger.Infow("ticket deleted", "ticket_id", ticketID)
	return nil
}
