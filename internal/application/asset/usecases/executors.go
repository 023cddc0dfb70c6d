package usecases

import (
	"context"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/asset/dto"
)

type CreateAssetExecutor interface {
	Execute(ctx context.Context, cmd CreateAssetCommand) (*dto.AssetDTO, error)
}

type GetAssetExecutor interface {
	Execute(ctx context.Context, assetID uint) (*dto.AssetDTO, error)
}

type ListCompanyAssetsExecutor interface {
	Execute(ctx context.Context, companyID uint) ([]*dto.AssetDTO, error)
}

type UpdateAssetExecutor interface {
	Execute(ctx context.Context, cmd UpdateAssetCommand) (*dto.AssetDTO, error)
}

type DeleteAssetExecutor interface {
	Execute(ctx context.Context, assetID uint) error
}

type BulkImportExecutor interface {
	Execute(ctx context.Context, cmd BulkImportCommand) (*BulkImportResult, error)
}

type ExportAssetsExecutor interface {
	Execute(ctx context.Context, companyID uint) ([]dto.AssetFields, error)
}
