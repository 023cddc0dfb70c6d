package usecases

import (
	"context"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/ticket"
)

// Notifier sends customer email after a ticket write has committed.
// Implementations swallow delivery errors.
type Notifier interface {
	TicketReceived(ctx context.Context, v *ticket.View)
	Changes(ctx context.Context, v *ticket.View, changes ticket.Changes)
	Replied(ctx context.Context, v *ticket.View, u *ticket.UpdateView)
}
