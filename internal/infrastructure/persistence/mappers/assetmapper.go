package mappers

import (
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/asset"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/persistence/models"
)

type AssetMapper interface {
	ToModel(a *asset.Asset) *models.AssetModel
	ToDomain(model *models.AssetModel) (*asset.Asset, error)
}

type AssetMapperImpl struct{}

func NewAssetMapper() AssetMapper {
	return &AssetMapperImpl{}
}

func (m *AssetMapperImpl) ToModel(a *asset.Asset) *models.AssetModel {
	d := a.Details()
	return &models.AssetModel{
		ID:              a.ID(),
		CompanyID:       a.CompanyID(),
		AssetName:       d.AssetName,
		SerialNumber:    d.SerialNumber,
		Status:          d.Status.String(),
		DeviceType:      d.DeviceType,
		OwnerLocation:   d.OwnerLocation,
		Brand:           d.Brand,
		Model:           d.Model,
		OperatingSystem: d.OperatingSystem,
		Description:     d.Description,
		CreatedAt:       a.CreatedAt(),
	}
}

func (m *AssetMapperImpl) ToDomain(model *models.AssetModel) (*asset.Asset, error) {
	return asset.ReconstructAsset(model.ID, model.CompanyID, asset.Details{
		AssetName:       model.AssetName,
		Description:     model.Description,
		SerialNumber:    model.SerialNumber,
		Status:          asset.Status(model.Status),
		DeviceType:      model.DeviceType,
		OwnerLocation:   model.OwnerLocation,
		Brand:           model.Brand,
		Model:           model.Model,
		OperatingSystem: model.OperatingSystem,
	}, model.CreatedAt)
}
