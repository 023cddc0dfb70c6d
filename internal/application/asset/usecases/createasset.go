package usecases

import (
	"context"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/asset/dto"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/asset"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
)

type CreateAssetCommand struct {
	CompanyID uint
	dto.AssetFields
}

type CreateAssetUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewCreateAssetUseCase(assetRepo asset.Repository, logger logger.Interface) *CreateAssetUseCase {
	return &CreateAssetUseCase{assetRepo: assetRepo, logger: logger}
}

func (uc *CreateAssetUseCase) Execute(ctx context.Context, cmd CreateAssetCommand) (*dto.AssetDTO, error) {
	details, err := cmd.ToDetails()
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	newAsset, err := asset.NewAsset(cmd.CompanyID, details)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.assetRepo.Create(ctx, newAsset); err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to create asset", "company_id", cmd.CompanyID, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("asset created", "asset_id", newAsset.ID(), "company_id", cmd.CompanyID)
	return dto.ToAssetDTO(newAsset), nil
}
