package usecases

import (
	"context"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/asset/dto"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/asset"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/company"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
)

type GetAssetUseCase struct {
	assetRepo asset.Repository
}

func NewGetAssetUseCase(assetRepo asset.Repository) *GetAssetUseCase {
	return &GetAssetUseCase{assetRepo: assetRepo}
}

func (uc *GetAssetUseCase) Execute(ctx context.Context, assetID uint) (*dto.AssetDTO, error) {
	a, err := uc.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	return dto.ToAssetDTO(a), nil
}

type ListCompanyAssetsUseCase struct {
	assetRepo   asset.Repository
	companyRepo company.Repository
	logger      logger.Interface
}

func NewListCompanyAssetsUseCase(
	assetRepo asset.Repository,
	companyRepo company.Repository,
	logger logger.Interface,
) *ListCompanyAssetsUseCase {
	return &ListCompanyAssetsUseCase{
		assetRepo:   assetRepo,
		companyRepo: companyRepo,
		logger:      logger,
	}
}

// Execute returns the company's assets ordered by name, or NotFound when
// the company does not exist.
func (uc *ListCompanyAssetsUseCase) Execute(ctx context.Context, companyID uint) ([]*dto.AssetDTO, error) {
	assets, err := listCompanyAssets(ctx, uc.assetRepo, uc.companyRepo, companyID)
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to list assets", "company_id", companyID, "error", err)
		}
		return nil, err
	}
	return dto.ToAssetDTOList(assets), nil
}

func listCompanyAssets(ctx context.Context, assetRepo asset.Repository, companyRepo company.Repository, companyID uint) ([]*asset.Asset, error) {
	exists, err := companyRepo.Exists(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NewNotFoundError("Company not found.")
	}
	return assetRepo.ListByCompany(ctx, companyID)
}
