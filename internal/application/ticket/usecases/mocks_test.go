package usecases

import (
	"context"
	"sync"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/ticket"
)

type notifyCall struct {
	kind     string
	ticketID uint
	changes  ticket.Changes
	update   *ticket.UpdateView
	view     *ticket.View
}

// recordingNotifier captures what would have been emailed.
type recordingNotifier struct {
	mu    sync.Mutex
	calls []notifyCall
}

func (n *recordingNotifier) TicketReceived(_ context.Context, v *ticket.View) {
	n.record(notifyCall{kind: "received", ticketID: v.ID, view: v})
}

func (n *recordingNotifier) Changes(_ context.Context, v *ticket.View, changes ticket.Changes) {
	n.record(notifyCall{kind: "changes", ticketID: v.ID, view: v, changes: changes})
}

func (n *recordingNotifier) Replied(_ context.Context, v *ticket.View, u *ticket.UpdateView) {
	n.record(notifyCall{kind: "reply", ticketID: v.ID, view: v, update: u})
}

func (n *recordingNotifier) record(c notifyCall) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, c)
}

func (n *recordingNotifier) kinds() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.calls))
	for _, c := range n.calls {
		out = append(out, c.kind)
	}
	return out
}
