package ticket

import (
	"context"

	vo "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	// Create inserts the ticket and its asset links.
	Create(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	// Save persists status, priority and assignee and bumps updated_at.
	Save(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error

	GetView(ctx context.Context, ticketID uint) (*View, error)
	ListViews(ctx context.Context, filter Filter) ([]*View, error)
	ListAssets(ctx context.Context, ticketID uint) ([]*LinkedAsset, error)
}

type UpdateRepository interface {
	Create(ctx context.Context, update *Update) error
	GetView(ctx context.Context, updateID uint) (*UpdateView, error)
	ListByTicket(ctx context.Context, ticketID uint) ([]*UpdateView, error)
}

// Filter narrows a ticket listing. Zero values mean "any".
type Filter struct {
	Status         *vo.TicketStatus
	Priority       *vo.Priority
	CompanyID      *uint
	AssignedUserID *uint
}
