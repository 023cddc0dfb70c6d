package usecases

import (
	"context"
	"net/mail"
	"strings"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/ticket/dto"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/company"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/ticket"
	vo "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/ticket/valueobjects"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/user"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/config"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/db"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/utils"
)

// IngestEmailCommand is one inbound email as delivered by the mail
// provider's parse webhook.
type IngestEmailCommand struct {
	From    string
	Subject string
	Text    string
}

// IngestEmailUseCase turns inbound email into ticket activity. A subject
// carrying a ticket tag appends a reply to that ticket; anything else opens
// a new ticket attributed to the system user.
type IngestEmailUseCase struct {
	ticketRepo  ticket.TicketRepository
	updateRepo  ticket.UpdateRepository
	companyRepo company.Repository
	userRepo    user.Repository
	txMgr       *db.TransactionManager
	notifier    Notifier
	cfg         config.TicketsConfig
	logger      logger.Interface
}

func NewIngestEmailUseCase(
	ticketRepo ticket.TicketRepository,
	updateRepo ticket.UpdateRepository,
	companyRepo company.Repository,
	userRepo user.Repository,
	txMgr *db.TransactionManager,
	notifier Notifier,
	cfg config.TicketsConfig,
	logger logger.Interface,
) *IngestEmailUseCase {
	return &IngestEmailUseCase{
		ticketRepo:  ticketRepo,
		updateRepo:  updateRepo,
		companyRepo: companyRepo,
		userRepo:    userRepo,
		txMgr:       txMgr,
		notifier:    notifier,
		cfg:         cfg,
		logger:      logger,
	}
}

func (uc *IngestEmailUseCase) Execute(ctx context.Context, cmd IngestEmailCommand) (*dto.IngestResult, error) {
	from := senderAddress(cmd.From)
	if from == "" || strings.TrimSpace(cmd.Subject) == "" || strings.TrimSpace(cmd.Text) == "" {
		return nil, errors.NewValidationError("Webhook requires from, subject, and text fields.")
	}

	if ticketID, ok := ticket.ParseReference(cmd.Subject); ok {
		return uc.appendReply(ctx, ticketID, from, cmd.Text)
	}
	return uc.openTicket(ctx, from, cmd.Subject, cmd.Text)
}

// appendReply records the customer's reply under the ticket's creator. No
// email goes back out, so auto-replies cannot loop.
func (uc *IngestEmailUseCase) appendReply(ctx context.Context, ticketID uint, from, text string) (*dto.IngestResult, error) {
	if ticketID == 0 {
		uc.logger.Warnw("email reply with unusable ticket tag", "from", utils.MaskEmail(from))
		return nil, errors.NewNotFoundError("Ticket not found.")
	}

	t, err := uc.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("email reply for unknown ticket", "ticket_id", ticketID, "from", utils.MaskEmail(from))
		}
		return nil, err
	}

	update, err := ticket.NewUpdate(t.ID(), t.UserID(), text)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.updateRepo.Create(txCtx, update); err != nil {
			return err
		}
		t.Touch()
		return uc.ticketRepo.Save(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to record email reply", "ticket_id", ticketID, "error", err)
		return nil, persistenceError(err)
	}

	uc.logger.Infow("email reply recorded", "ticket_id", ticketID, "update_id", update.ID(), "from", utils.MaskEmail(from))

	return &dto.IngestResult{
		Message:  "Email processed successfully.",
		TicketID: ticketID,
		Created:  false,
	}, nil
}

func (uc *IngestEmailUseCase) openTicket(ctx context.Context, from, subject, text string) (*dto.IngestResult, error) {
	companyID, err := uc.resolveCompany(ctx, from)
	if err != nil {
		return nil, err
	}

	systemUser, err := uc.userRepo.Exists(ctx, uc.cfg.SystemUserID)
	if err != nil {
		uc.logger.Errorw("failed to check system user", "user_id", uc.cfg.SystemUserID, "error", err)
		return nil, persistenceError(err)
	}
	if !systemUser {
		uc.logger.Errorw("configured system user does not exist", "user_id", uc.cfg.SystemUserID)
		return nil, errors.NewInternalError("Failed to process email.", "system user is not configured")
	}

	t, err := ticket.NewTicket(companyID, uc.cfg.SystemUserID, subject, text, from, vo.PriorityNormal, nil)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ticketRepo.Create(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to create ticket from email", "company_id", companyID, "error", err)
		return nil, persistenceError(err)
	}

	uc.logger.Infow("ticket created from email", "ticket_id", t.ID(), "company_id", companyID, "from", utils.MaskEmail(from))

	if view, err := uc.ticketRepo.GetView(ctx, t.ID()); err != nil {
		uc.logger.Warnw("failed to load ticket for confirmation email", "ticket_id", t.ID(), "error", err)
	} else {
		uc.notifier.TicketReceived(ctx, view)
	}

	return &dto.IngestResult{
		Message:  "Email processed successfully.",
		TicketID: t.ID(),
		Created:  true,
	}, nil
}

// resolveCompany picks the company whose contact email matches the sender,
// falling back to the configured catch-all company.
func (uc *IngestEmailUseCase) resolveCompany(ctx context.Context, from string) (uint, error) {
	c, err := uc.companyRepo.FindByContactEmail(ctx, from)
	if err != nil {
		uc.logger.Errorw("failed to look up sender company", "error", err)
		return 0, persistenceError(err)
	}
	if c != nil {
		return c.ID(), nil
	}

	exists, err := uc.companyRepo.Exists(ctx, uc.cfg.FallbackCompanyID)
	if err != nil {
		uc.logger.Errorw("failed to check fallback company", "company_id", uc.cfg.FallbackCompanyID, "error", err)
		return 0, persistenceError(err)
	}
	if !exists {
		uc.logger.Errorw("configured fallback company does not exist", "company_id", uc.cfg.FallbackCompanyID)
		return 0, errors.NewInternalError("Failed to process email.", "fallback company is not configured")
	}
	return uc.cfg.FallbackCompanyID, nil
}

// senderAddress reduces an RFC 5322 From value to the bare address.
func senderAddress(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if addr, err := mail.ParseAddress(raw); err == nil {
		return addr.Address
	}
	return raw
}

// persistenceError keeps AppErrors as they are and reports anything else as a
// 500 without leaking driver text.
func persistenceError(err error) error {
	if errors.IsAppError(err) {
		return err
	}
	return errors.NewInternalError("Failed to process email.")
}
