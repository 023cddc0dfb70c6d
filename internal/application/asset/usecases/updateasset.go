package usecases

import (
	"context"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/asset/dto"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/asset"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
)

type UpdateAssetCommand struct {
	AssetID uint
	// CompanyID moves the asset when set.
	CompanyID uint
	dto.AssetFields
}

// UpdateAssetUseCase replaces every editable field of an asset.
type UpdateAssetUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewUpdateAssetUseCase(assetRepo asset.Repository, logger logger.Interface) *UpdateAssetUseCase {
	return &UpdateAssetUseCase{assetRepo: assetRepo, logger: logger}
}

func (uc *UpdateAssetUseCase) Execute(ctx context.Context, cmd UpdateAssetCommand) (*dto.AssetDTO, error) {
	existing, err := uc.assetRepo.GetByID(ctx, cmd.AssetID)
	if err != nil {
		return nil, err
	}

	details, err := cmd.ToDetails()
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := existing.Replace(details); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.CompanyID != 0 {
		if err := existing.MoveTo(cmd.CompanyID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.assetRepo.Update(ctx, existing); err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to update asset", "asset_id", cmd.AssetID, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("asset updated", "asset_id", existing.ID())
	return dto.ToAssetDTO(existing), nil
}

type DeleteAssetUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewDeleteAssetUseCase(assetRepo asset.Repository, logger logger.Interface) *DeleteAssetUseCase {
	return &DeleteAssetUseCase{assetRepo: assetRepo, logger: logger}
}

func (uc *DeleteAssetUseCase) Execute(ctx context.Context, assetID uint) error {
	if err := uc.assetRepo.Delete(ctx, assetID); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete asset", "asset_id", assetID, "error", err)
		}
		return err
	}
	uc.logger.Infow("asset deleted", "asset_id", assetID)
	return nil
}
