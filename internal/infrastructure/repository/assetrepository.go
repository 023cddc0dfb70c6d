package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/asset"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/persistence/mappers"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/persistence/models"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/db"
	apperrors "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
)

const errMsgDuplicateSerial = "An asset with this serial number already exists."

type AssetRepository struct {
	db     *gorm.DB
	mapper mappers.AssetMapper
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{
		db:     db,
		mapper: mappers.NewAssetMapper(),
	}
}

func (r *AssetRepository) translateWriteError(err error, op string) error {
	switch {
	case apperrors.IsDuplicateError(err):
		return apperrors.NewConflictError(errMsgDuplicateSerial)
	case apperrors.IsForeignKeyError(err):
		return apperrors.NewNotFoundError("Company not found.")
	default:
		return fmt.Errorf("failed to %s asset: %w", op, err)
	}
}

func (r *AssetRepository) Create(ctx context.Context, a *asset.Asset) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
		return r.translateWriteError(err, "create")
	}

	return a.SetID(model.ID)
}

func (r *AssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.AssetModel{}).
		Where("id = ?", model.ID).
		Select("company_id", "asset_name", "serial_number", "status", "device_type",
			"owner_location", "brand", "model", "operating_system", "description").
		Updates(model)
	if result.Error != nil {
		return r.translateWriteError(result.Error, "update")
	}
	return nil
}

func (r *AssetRepository) GetByID(ctx context.Context, id uint) (*asset.Asset, error) {
	var model models.AssetModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Asset not found.")
		}
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AssetRepository) ListByCompany(ctx context.Context, companyID uint) ([]*asset.Asset, error) {
	var rows []models.AssetModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("company_id = ?", companyID).
		Order("asset_name ASC").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	out := make([]*asset.Asset, 0, len(rows))
	for i := range rows {
		a, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *AssetRepository) CountExisting(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.AssetModel{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count assets: %w", err)
	}
	return count, nil
}

func (r *AssetRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.AssetModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete asset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Asset not found.")
	}
	return nil
}
