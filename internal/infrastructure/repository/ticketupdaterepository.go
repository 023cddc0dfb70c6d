package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/ticket"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/persistence/mappers"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/db"
	apperrors "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
)

type updateViewRow struct {
	ID         uint
	TicketID   uint
	UserID     uint
	UserName   *string
	UpdateText string
	CreatedAt  time.Time
}

func (row *updateViewRow) toView() *ticket.UpdateView {
	return &ticket.UpdateView{
		ID:         row.ID,
		TicketID:   row.TicketID,
		UserID:     row.UserID,
		UserName:   deref(row.UserName),
		UpdateText: row.UpdateText,
		CreatedAt:  row.CreatedAt,
	}
}

type TicketUpdateRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketUpdateRepository(db *gorm.DB) *TicketUpdateRepository {
	return &TicketUpdateRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketUpdateRepository) Create(ctx context.Context, u *ticket.Update) error {
	model := r.mapper.UpdateToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
		if apperrors.IsForeignKeyError(err) {
			return apperrors.NewValidationError("Ticket or author does not exist.")
		}
		return fmt.Errorf("failed to create ticket update: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *TicketUpdateRepository) viewQuery(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).
		Table("ticket_updates AS tu").
		Select("tu.id, tu.ticket_id, tu.user_id, u.username AS user_name, tu.update_text, tu.created_at").
		Joins("LEFT JOIN users u ON u.id = tu.user_id")
}

func (r *TicketUpdateRepository) GetView(ctx context.Context, id uint) (*ticket.UpdateView, error) {
	var rows []updateViewRow

	if err := r.viewQuery(ctx).Where("tu.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket update: %w", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.NewNotFoundError("Ticket update not found.")
	}
	return rows[0].toView(), nil
}

func (r *TicketUpdateRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.UpdateView, error) {
	var rows []updateViewRow

	err := r.viewQuery(ctx).
		Where("tu.ticket_id = ?", ticketID).
		Order("tu.created_at ASC").
		Order("tu.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ticket updates: %w", err)
	}

	out := make([]*ticket.UpdateView, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toView())
	}
	return out, nil
}
