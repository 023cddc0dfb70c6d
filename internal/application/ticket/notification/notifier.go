// Package notification sends the customer-facing ticket emails. Every send
// happens after the triggering write has committed; failures are logged and
// counted, never returned.
package notification

import (
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/ticket"
	vo "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/ticket/valueobjects"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/services/markdown"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/utils"
)

// Recorder counts notification outcomes.
type Recorder interface {
	NotificationSent(kind, result string)
}

const (
	resultSent    = "sent"
	resultFailed  = "failed"
	resultSkipped = "skipped"
)

type Notifier struct {
	mailer   ticket.Mailer
	markdown markdown.MarkdownService
	recorder Recorder
	timeout  time.Duration
	renderer *renderer
	logger   logger.Interface
}

func NewNotifier(
	mailer ticket.Mailer,
	md markdown.MarkdownService,
	recorder Recorder,
	timeout time.Duration,
	log logger.Interface,
) (*Notifier, error) {
	r, err := newRenderer()
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Notifier{
		mailer:   mailer,
		markdown: md,
		recorder: recorder,
		timeout:  timeout,
		renderer: r,
		logger:   log.Named("notification"),
	}, nil
}

// TicketReceived confirms a new ticket to its customer.
func (n *Notifier) TicketReceived(ctx context.Context, v *ticket.View) {
	subject := fmt.Sprintf("%s Your support request has been received: %s", ticket.Reference(v.ID), v.Title)
	text := fmt.Sprintf("We have received your support request.\n\nTicket: #%d\nTitle: %s\nPriority: %s\n\n%s\n",
		v.ID, v.Title, v.Priority, v.Description)

	n.send(ctx, KindReceived, v, subject, text, templateData{
		Priority: v.Priority.String(),
		BodyHTML: n.renderMarkdown(v.Description),
	})
}

// Changes sends one email per changed field of a revised ticket. v is the
// ticket as reloaded after the write. All sends share one timeout.
func (n *Notifier) Changes(ctx context.Context, v *ticket.View, changes ticket.Changes) {
	if !changes.Any() {
		return
	}
	ctx, cancel := n.budget(ctx)
	defer cancel()

	if changes.StatusChanged() {
		n.StatusChanged(ctx, v, changes.OldStatus, changes.NewStatus)
	}
	if changes.PriorityChanged() {
		n.PriorityChanged(ctx, v, changes.OldPriority, changes.NewPriority)
	}
	if changes.AssigneeChanged() {
		n.Assigned(ctx, v)
	}
}

func (n *Notifier) StatusChanged(ctx context.Context, v *ticket.View, from, to vo.TicketStatus) {
	subject := fmt.Sprintf("Re: %s Status Updated: %s", ticket.Reference(v.ID), v.Title)
	text := fmt.Sprintf("The status of ticket #%d (%s) changed from %s to %s.\n", v.ID, v.Title, from, to)

	n.send(ctx, KindStatus, v, subject, text, templateData{Old: from.String(), New: to.String()})
}

func (n *Notifier) PriorityChanged(ctx context.Context, v *ticket.View, from, to vo.Priority) {
	subject := fmt.Sprintf("Re: %s Priority Updated: %s", ticket.Reference(v.ID), v.Title)
	text := fmt.Sprintf("The priority of ticket #%d (%s) changed from %s to %s.\n", v.ID, v.Title, from, to)

	n.send(ctx, KindPriority, v, subject, text, templateData{Old: from.String(), New: to.String()})
}

// Assigned names the current assignee, or "our team" when there is none.
func (n *Notifier) Assigned(ctx context.Context, v *ticket.View) {
	assignee := v.AssigneeLabel()
	subject := fmt.Sprintf("Re: %s Your Ticket Has Been Assigned: %s", ticket.Reference(v.ID), v.Title)
	text := fmt.Sprintf("Ticket #%d (%s) is now being handled by %s.\n", v.ID, v.Title, assignee)

	n.send(ctx, KindAssignment, v, subject, text, templateData{Assignee: assignee})
}

// Replied forwards a staff update to the customer.
func (n *Notifier) Replied(ctx context.Context, v *ticket.View, u *ticket.UpdateView) {
	subject := fmt.Sprintf("Re: %s %s", ticket.Reference(v.ID), v.Title)
	text := fmt.Sprintf("%s wrote:\n\n%s\n", u.UserName, u.UpdateText)

	n.send(ctx, KindReply, v, subject, text, templateData{
		Author:   u.UserName,
		BodyHTML: n.renderMarkdown(u.UpdateText),
	})
}

func (n *Notifier) renderMarkdown(src string) template.HTML {
	out, err := n.markdown.ToHTMLSanitized(src)
	if err != nil {
		n.logger.Warnw("failed to render markdown, sending escaped text", "error", err)
		return template.HTML(template.HTMLEscapeString(src))
	}
	// Sanitized by bluemonday above.
	return template.HTML(out)
}

func (n *Notifier) send(ctx context.Context, kind string, v *ticket.View, subject, text string, data templateData) {
	if v.CustomerEmail == nil || *v.CustomerEmail == "" {
		n.record(kind, resultSkipped)
		return
	}
	to := *v.CustomerEmail

	data.TicketID = v.ID
	data.Reference = ticket.Reference(v.ID)
	data.Title = v.Title

	html, err := n.renderer.render(kind, data)
	if err != nil {
		n.logger.Errorw("failed to render notification", "kind", kind, "ticket_id", v.ID, "error", err)
		n.record(kind, resultFailed)
		return
	}

	sendCtx, cancel := n.budget(ctx)
	defer cancel()

	err = n.mailer.Send(sendCtx, ticket.Message{To: to, Subject: subject, HTML: html, Text: text})
	if err != nil {
		n.logger.Warnw("failed to send notification",
			"kind", kind,
			"ticket_id", v.ID,
			"to", utils.MaskEmail(to),
			"error", err,
		)
		n.record(kind, resultFailed)
		return
	}

	n.logger.Infow("notification sent", "kind", kind, "ticket_id", v.ID, "to", utils.MaskEmail(to))
	n.record(kind, resultSent)
}

// budget bounds sends by the configured timeout. The triggering write has
// already committed, so a departing client does not cancel them.
func (n *Notifier) budget(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
}

func (n *Notifier) record(kind, result string) {
	if n.recorder != nil {
		n.recorder.NotificationSent(kind, result)
	}
}
