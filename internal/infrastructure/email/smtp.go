package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/ticket"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/config"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/utils"
)

// dialer is the part of *gomail.Dialer the mailer uses.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer delivers notifications through an SMTP relay. Port 465 is
// dialled with implicit TLS.
type SMTPMailer struct {
	dialer   dialer
	from     string
	fromName string
	logger   logger.Interface
}

var _ ticket.Mailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg config.EmailConfig, log logger.Interface) *SMTPMailer {
	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.APIKey)
	d.SSL = cfg.SMTPPort == 465

	return &SMTPMailer{
		dialer:   d,
		from:     cfg.FromAddress,
		fromName: cfg.FromName,
		logger:   log.Named("email.smtp"),
	}
}

func (m *SMTPMailer) buildMessage(msg ticket.Message) *gomail.Message {
	gm := gomail.NewMessage()
	if m.fromName != "" {
		gm.SetAddressHeader("From", m.from, m.fromName)
	} else {
		gm.SetHeader("From", m.from)
	}
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)

	if msg.Text != "" {
		gm.SetBody("text/plain", msg.Text)
		if msg.HTML != "" {
			gm.AddAlternative("text/html", msg.HTML)
		}
	} else {
		gm.SetBody("text/html", msg.HTML)
	}
	return gm
}

// Send dials the relay and delivers msg. It returns ctx.Err() when the
// context ends first; the dial itself is not interruptible and finishes in
// the background.
func (m *SMTPMailer) Send(ctx context.Context, msg ticket.Message) error {
	if msg.To == "" {
		return fmt.Errorf("email recipient is required")
	}

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(m.buildMessage(msg))
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		m.logger.Debugw("email sent", "to", utils.MaskEmail(msg.To), "subject", msg.Subject)
		return nil
	case <-ctx.Done():
		return fmt.Errorf("email send to %s abandoned: %w", utils.MaskEmail(msg.To), ctx.Err())
	}
}

// NoopMailer stands in when email delivery is disabled.
type NoopMailer struct {
	logger logger.Interface
}

var _ ticket.Mailer = (*NoopMailer)(nil)

func NewNoopMailer(log logger.Interface) *NoopMailer {
	return &NoopMailer{logger: log.Named("email.noop")}
}

func (m *NoopMailer) Send(_ context.Context, msg ticket.Message) error {
	m.logger.Infow("email delivery disabled, dropping message",
		"to", utils.MaskEmail(msg.To),
		"subject", msg.Subject,
	)
	return nil
}

// NewMailer picks the SMTP mailer when email is enabled.
func NewMailer(cfg config.EmailConfig, log logger.Interface) ticket.Mailer {
	if !cfg.Enabled {
		return NewNoopMailer(log)
	}
	return NewSMTPMailer(cfg, log)
}
