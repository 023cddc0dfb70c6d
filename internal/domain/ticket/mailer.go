package ticket

import "context"

// Message is an outbound customer email.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Mailer delivers customer notifications.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
