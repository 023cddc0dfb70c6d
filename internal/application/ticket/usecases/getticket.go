package usecases

import (
	"context"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/ticket/dto"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/ticket"
	vo "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/ticket/valueobjects"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
)

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	updateRepo ticket.UpdateRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	updateRepo ticket.UpdateRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		updateRepo: updateRepo,
		logger:     logger,
	}
}

// Execute returns the ticket with its updates, oldest first, and its linked
// assets.
func (uc *GetTicketUseCase) Execute(ctx context.Context, ticketID uint) (*dto.TicketDetailDTO, error) {
	view, err := uc.ticketRepo.GetView(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	updates, err := uc.updateRepo.ListByTicket(ctx, ticketID)
	if err != nil {
		uc.logger.Errorw("failed to list ticket updates", "ticket_id", ticketID, "error", err)
		return nil, err
	}

	assets, err := uc.ticketRepo.ListAssets(ctx, ticketID)
	if err != nil {
		uc.logger.Errorw("failed to list ticket assets", "ticket_id", ticketID, "error", err)
		return nil, err
	}

	return &dto.TicketDetailDTO{
		TicketDTO: dto.ToTicketDTO(view),
		Updates:   dto.ToUpdateDTOList(updates),
		Assets:    dto.ToLinkedAssetDTOList(assets),
	}, nil
}

// ListTicketsQuery holds the optional list filters as they arrive on the
// query string.
type ListTicketsQuery struct {
	Status         string
	Priority       string
	CompanyID      *uint
	AssignedUserID *uint
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

// Execute lists tickets, most recently updated first.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error) {
	filter := ticket.Filter{
		CompanyID:      query.CompanyID,
		AssignedUserID: query.AssignedUserID,
	}
	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	views, err := uc.ticketRepo.ListViews(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}
	return dto.ToTicketDTOList(views), nil
}
