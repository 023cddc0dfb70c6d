package usecases

import (
	"context"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type AddUpdateExecutor interface {
	Execute(ctx context.Context, cmd AddUpdateCommand) (*dto.UpdateDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, ticketID uint) (*dto.TicketDetailDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, ticketID uint) error
}

type IngestEmailExecutor interface {
	Execute(ctx context.Context, cmd IngestEmailCommand) (*dto.IngestResult, error)
}
