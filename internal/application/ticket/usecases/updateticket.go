package usecases

import (
	"context"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/ticket/dto"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/ticket"
	vo "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/ticket/valueobjects"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/user"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
)

// UpdateTicketCommand replaces the staff-managed fields. A nil or zero
// AssignedUserID unassigns the ticket.
type UpdateTicketCommand struct {
	TicketID       uint
	Status         string
	Priority       string
	AssignedUserID *uint
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	notifier   Notifier
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	notifier Notifier,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	if cmd.Status == "" || cmd.Priority == "" {
		return nil, errors.NewValidationError("Status and priority are required.")
	}
	status, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	assignee := cmd.AssignedUserID
	if assignee != nil && *assignee == 0 {
		assignee = nil
	}
	if assignee != nil {
		exists, err := uc.userRepo.Exists(ctx, *assignee)
		if err != nil {
			uc.logger.Errorw("failed to check assignee", "user_id", *assignee, "error", err)
			return nil, err
		}
		if !exists {
			return nil, errors.NewValidationError("assigned_user_id does not reference an existing user.")
		}
	}

	changes, err := t.Revise(status, priority, assignee)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
		}
		return nil, err
	}

	view, err := uc.ticketRepo.GetView(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to reload ticket", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket updated",
		"ticket_id", t.ID(),
		"status_changed", changes.StatusChanged(),
		"priority_changed", changes.PriorityChanged(),
		"assignee_changed", changes.AssigneeChanged(),
	)

	uc.notifier.Changes(ctx, view, changes)

	return dto.ToTicketDTO(view), nil
}
