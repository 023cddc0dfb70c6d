package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/ticket"
	vo "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/ticket/valueobjects"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/persistence/mappers"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/persistence/models"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/db"
	apperrors "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
)

const ticketViewColumns = `t.id, t.company_id, c.name AS company_name, t.user_id, u.username AS user_name,
	t.assigned_user_id, au.username AS assigned_user_name, t.title, t.description,
	t.customer_email, t.priority, t.status, t.created_at, t.updated_at`

// ticketViewRow is the scan target of the joined ticket query.
type ticketViewRow struct {
	ID               uint
	CompanyID        uint
	CompanyName      *string
	UserID           uint
	UserName         *string
	AssignedUserID   *uint
	AssignedUserName *string
	Title            string
	Description      string
	CustomerEmail    *string
	Priority         string
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (row *ticketViewRow) toView() *ticket.View {
	return &ticket.View{
		ID:               row.ID,
		CompanyID:        row.CompanyID,
		CompanyName:      deref(row.CompanyName),
		UserID:           row.UserID,
		UserName:         deref(row.UserName),
		AssignedUserID:   row.AssignedUserID,
		AssignedUserName: row.AssignedUserName,
		Title:            row.Title,
		Description:      row.Description,
		CustomerEmail:    row.CustomerEmail,
		Priority:         vo.Priority(row.Priority),
		Status:           vo.TicketStatus(row.Status),
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

// Create inserts the ticket row and one ticket_assets row per linked asset.
// Callers run it inside a transaction so a failing link leaves no ticket.
func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
		if apperrors.IsForeignKeyError(err) {
			return apperrors.NewValidationError("company_id or creator does not exist.")
		}
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	assetIDs := t.AssetIDs()
	if len(assetIDs) == 0 {
		return nil
	}

	links := make([]models.TicketAssetModel, 0, len(assetIDs))
	for _, assetID := range assetIDs {
		links = append(links, models.TicketAssetModel{TicketID: model.ID, AssetID: assetID})
	}
	if err := tx.Omit(clause.Associations).Create(&links).Error; err != nil {
		if apperrors.IsForeignKeyError(err) {
			return apperrors.NewValidationError("One or more asset_ids do not exist.")
		}
		return fmt.Errorf("failed to link ticket assets: %w", err)
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Ticket not found.")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// Save writes the mutable workflow fields and bumps updated_at.
func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.TicketModel{}).
		Where("id = ?", t.ID()).
		Updates(map[string]any{
			"status":           t.Status().String(),
			"priority":         t.Priority().String(),
			"assigned_user_id": t.AssignedUserID(),
			"updated_at":       t.UpdatedAt(),
		})
	if result.Error != nil {
		if apperrors.IsForeignKeyError(result.Error) {
			return apperrors.NewValidationError("assigned_user_id does not reference an existing user.")
		}
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Ticket not found.")
	}
	return nil
}

func (r *TicketRepository) viewQuery(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).
		Table("tickets AS t").
		Select(ticketViewColumns).
		Joins("LEFT JOIN companies c ON c.id = t.company_id").
		Joins("LEFT JOIN users u ON u.id = t.user_id").
		Joins("LEFT JOIN users au ON au.id = t.assigned_user_id")
}

func (r *TicketRepository) GetView(ctx context.Context, id uint) (*ticket.View, error) {
	var rows []ticketViewRow

	if err := r.viewQuery(ctx).Where("t.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.NewNotFoundError("Ticket not found.")
	}

	return rows[0].toView(), nil
}

func (r *TicketRepository) ListViews(ctx context.Context, filter ticket.Filter) ([]*ticket.View, error) {
	var rows []ticketViewRow

	q := r.viewQuery(ctx).Scopes(
		db.WhereIf(filter.Status != nil, "t.status = ?", ptrValue(filter.Status)),
		db.WhereIf(filter.Priority != nil, "t.priority = ?", ptrValue(filter.Priority)),
		db.WhereIf(filter.CompanyID != nil, "t.company_id = ?", ptrValue(filter.CompanyID)),
		db.WhereIf(filter.AssignedUserID != nil, "t.assigned_user_id = ?", ptrValue(filter.AssignedUserID)),
	)

	if err := q.Order("t.updated_at DESC").Order("t.id DESC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	views := make([]*ticket.View, 0, len(rows))
	for i := range rows {
		views = append(views, rows[i].toView())
	}
	return views, nil
}

func ptrValue[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func (r *TicketRepository) ListAssets(ctx context.Context, ticketID uint) ([]*ticket.LinkedAsset, error) {
	var rows []struct {
		ID           uint
		AssetName    string
		SerialNumber *string
		Status       string
	}

	err := db.GetTxFromContext(ctx, r.db).
		Table("assets AS a").
		Select("a.id, a.asset_name, a.serial_number, a.status").
		Joins("JOIN ticket_assets ta ON ta.asset_id = a.id").
		Where("ta.ticket_id = ?", ticketID).
		Order("a.asset_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ticket assets: %w", err)
	}

	out := make([]*ticket.LinkedAsset, 0, len(rows))
	for _, row := range rows {
		out = append(out, &ticket.LinkedAsset{
			ID:           row.ID,
			AssetName:    row.AssetName,
			SerialNumber: row.SerialNumber,
			Status:       row.Status,
		})
	}
	return out, nil
}
