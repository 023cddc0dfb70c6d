package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/company"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/persistence/mappers"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/persistence/models"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/db"
	apperrors "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
)

const errMsgDuplicateCompany = "A company with this name already exists."

type CompanyRepository struct {
	db     *gorm.DB
	mapper mappers.CompanyMapper
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{
		db:     db,
		mapper: mappers.NewCompanyMapper(),
	}
}

func (r *CompanyRepository) Create(ctx context.Context, c *company.Company) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError(errMsgDuplicateCompany)
		}
		return fmt.Errorf("failed to create company: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CompanyRepository) Update(ctx context.Context, c *company.Company) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select every column so cleared contact fields are written as empty.
	result := tx.Model(&models.CompanyModel{}).
		Where("id = ?", model.ID).
		Select("name", "contact_person", "contact_email", "contact_phone", "address").
		Updates(model)
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError(errMsgDuplicateCompany)
		}
		return fmt.Errorf("failed to update company: %w", result.Error)
	}
	return nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id uint) (*company.Company, error) {
	var model models.CompanyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Company not found.")
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CompanyRepository) List(ctx context.Context) ([]*company.Company, error) {
	var rows []models.CompanyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	return r.toDomainList(rows)
}

func (r *CompanyRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.CompanyModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check company: %w", err)
	}
	return count > 0, nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.CompanyModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Company not found.")
	}
	return nil
}

func (r *CompanyRepository) FindByContactEmail(ctx context.Context, email string) (*company.Company, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, nil
	}

	var model models.CompanyModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("LOWER(contact_email) = ?", strings.ToLower(email)).
		Order("id ASC").
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find company by contact email: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CompanyRepository) toDomainList(rows []models.CompanyModel) ([]*company.Company, error) {
	out := make([]*company.Company, 0, len(rows))
	for i := range rows {
		c, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
