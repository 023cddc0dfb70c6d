package usecases

import (
	"context"
	"fmt"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/asset/dto"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/asset"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/company"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/db"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/utils"
)

const maxImportRows = 5000

type BulkImportCommand struct {
	CompanyID uint
	Rows      []dto.AssetFields
}

type BulkImportResult struct {
	Imported int             `json:"imported"`
	Assets   []*dto.AssetDTO `json:"assets"`
}

// BulkImportUseCase imports a batch of assets into one company. The batch is
// all-or-nothing: every row is validated up front and all inserts share one
// transaction. Errors name the 1-based row that failed.
type BulkImportUseCase struct {
	assetRepo   asset.Repository
	companyRepo company.Repository
	txMgr       *db.TransactionManager
	logger      logger.Interface
}

func NewBulkImportUseCase(
	assetRepo asset.Repository,
	companyRepo company.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *BulkImportUseCase {
	return &BulkImportUseCase{
		assetRepo:   assetRepo,
		companyRepo: companyRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *BulkImportUseCase) Execute(ctx context.Context, cmd BulkImportCommand) (*BulkImportResult, error) {
	if cmd.CompanyID == 0 {
		return nil, errors.NewValidationError("company_id is required")
	}
	if len(cmd.Rows) == 0 {
		return nil, errors.NewValidationError("No assets to import.")
	}
	if len(cmd.Rows) > maxImportRows {
		return nil, errors.NewValidationError(fmt.Sprintf("At most %d assets can be imported at once.", maxImportRows))
	}

	exists, err := uc.companyRepo.Exists(ctx, cmd.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to check company", "company_id", cmd.CompanyID, "error", err)
		return nil, err
	}
	if !exists {
		return nil, errors.NewNotFoundError("Company not found.")
	}

	assets := make([]*asset.Asset, 0, len(cmd.Rows))
	for i, row := range cmd.Rows {
		a, err := buildImportAsset(cmd.CompanyID, row)
		if err != nil {
			return nil, rowError(i, err)
		}
		assets = append(assets, a)
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		for i, a := range assets {
			if err := uc.assetRepo.Create(txCtx, a); err != nil {
				return rowError(i, err)
			}
		}
		return nil
	})
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("bulk import failed", "company_id", cmd.CompanyID, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("assets imported", "company_id", cmd.CompanyID, "count", len(assets))

	return &BulkImportResult{
		Imported: len(assets),
		Assets:   dto.ToAssetDTOList(assets),
	}, nil
}

func buildImportAsset(companyID uint, row dto.AssetFields) (*asset.Asset, error) {
	if err := utils.ValidateStruct(row); err != nil {
		return nil, err
	}
	details, err := row.ToDetails()
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	a, err := asset.NewAsset(companyID, details)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	return a, nil
}

// rowError prefixes err's message with the 1-based row number, keeping its
// HTTP classification.
func rowError(index int, err error) error {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		return fmt.Errorf("row %d: %w", index+1, err)
	}
	prefixed := *appErr
	prefixed.Message = fmt.Sprintf("Row %d: %s", index+1, appErr.Message)
	return &prefixed
}
