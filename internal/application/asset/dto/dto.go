package dto

import (
	"time"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/asset"
)

type AssetDTO struct {
	ID              uint      `json:"id"`
	CompanyID       uint      `json:"company_id"`
	AssetName       string    `json:"asset_name"`
	Description     string    `json:"description"`
	SerialNumber    *string   `json:"serial_number"`
	Status          string    `json:"status"`
	DeviceType      string    `json:"device_type"`
	OwnerLocation   string    `json:"owner_location"`
	Brand           string    `json:"brand"`
	Model           string    `json:"model"`
	OperatingSystem string    `json:"operating_system"`
	CreatedAt       time.Time `json:"created_at"`
}

func ToAssetDTO(a *asset.Asset) *AssetDTO {
	if a == nil {
		return nil
	}
	d := a.Details()
	return &AssetDTO{
		ID:              a.ID(),
		CompanyID:       a.CompanyID(),
		AssetName:       d.AssetName,
		Description:     d.Description,
		SerialNumber:    d.SerialNumber,
		Status:          d.Status.String(),
		DeviceType:      d.DeviceType,
		OwnerLocation:   d.OwnerLocation,
		Brand:           d.Brand,
		Model:           d.Model,
		OperatingSystem: d.OperatingSystem,
		CreatedAt:       a.CreatedAt(),
	}
}

func ToAssetDTOList(assets []*asset.Asset) []*AssetDTO {
	out := make([]*AssetDTO, 0, len(assets))
	for _, a := range assets {
		out = append(out, ToAssetDTO(a))
	}
	return out
}

// AssetFields is the editable payload shared by create, update, bulk import
// and export. Export output fed back into bulk import reproduces the same
// assets.
type AssetFields struct {
	AssetName       string `json:"asset_name" validate:"required"`
	Description     string `json:"description"`
	SerialNumber    string `json:"serial_number"`
	Status          string `json:"status"`
	DeviceType      string `json:"device_type"`
	OwnerLocation   string `json:"owner_location"`
	Brand           string `json:"brand"`
	Model           string `json:"model"`
	OperatingSystem string `json:"operating_system"`
}

// ToDetails parses the status and builds domain details. Field presence
// rules are enforced by the domain.
func (f AssetFields) ToDetails() (asset.Details, error) {
	status, err := asset.ParseStatus(f.Status)
	if err != nil {
		return asset.Details{}, err
	}
	serial := f.SerialNumber
	return asset.Details{
		AssetName:       f.AssetName,
		Description:     f.Description,
		SerialNumber:    &serial,
		Status:          status,
		DeviceType:      f.DeviceType,
		OwnerLocation:   f.OwnerLocation,
		Brand:           f.Brand,
		Model:           f.Model,
		OperatingSystem: f.OperatingSystem,
	}, nil
}

func ToAssetFields(a *asset.Asset) AssetFields {
	d := a.Details()
	serial := ""
	if d.SerialNumber != nil {
		serial = *d.SerialNumber
	}
	return AssetFields{
		AssetName:       d.AssetName,
		Description:     d.Description,
		SerialNumber:    serial,
		Status:          d.Status.String(),
		DeviceType:      d.DeviceType,
		OwnerLocation:   d.OwnerLocation,
		Brand:           d.Brand,
		Model:           d.Model,
		OperatingSystem: d.OperatingSystem,
	}
}
