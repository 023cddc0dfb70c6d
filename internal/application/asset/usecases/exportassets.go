package usecases

import (
	"context"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/asset/dto"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/asset"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/company"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
)

// ExportAssetsUseCase returns a company's assets in the import row shape.
type ExportAssetsUseCase struct {
	assetRepo   asset.Repository
	companyRepo company.Repository
	logger      logger.Interface
}

func NewExportAssetsUseCase(
	assetRepo asset.Repository,
	companyRepo company.Repository,
	logger logger.Interface,
) *ExportAssetsUseCase {
	return &ExportAssetsUseCase{
		assetRepo:   assetRepo,
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *ExportAssetsUseCase) Execute(ctx context.Context, companyID uint) ([]dto.AssetFields, error) {
	assets, err := listCompanyAssets(ctx, uc.assetRepo, uc.companyRepo, companyID)
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to export assets", "company_id", companyID, "error", err)
		}
		return nil, err
	}

	rows := make([]dto.AssetFields, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, dto.ToAssetFields(a))
	}

	uc.logger.Infow("assets exported", "company_id", companyID, "count", len(rows))
	return rows, nil
}
