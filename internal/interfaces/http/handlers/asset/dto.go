package asset

import (
	"bytes"
	"encoding/json"
	"fmt"

	assetdto "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/asset/dto"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/asset/usecases"
)

type CreateAssetRequest struct {
	CompanyID uint `json:"company_id" binding:"required"`
	assetdto.AssetFields
}

func (r *CreateAssetRequest) ToCommand() usecases.CreateAssetCommand {
	return usecases.CreateAssetCommand{CompanyID: r.CompanyID, AssetFields: r.AssetFields}
}

// UpdateAssetRequest replaces every editable field. A non-zero company_id
// moves the asset to that company.
type UpdateAssetRequest struct {
	CompanyID uint `json:"company_id"`
	assetdto.AssetFields
}

func (r *UpdateAssetRequest) ToCommand(assetID uint) usecases.UpdateAssetCommand {
	return usecases.UpdateAssetCommand{
		AssetID:     assetID,
		CompanyID:   r.CompanyID,
		AssetFields: r.AssetFields,
	}
}

type BulkImportRequest struct {
	CompanyID uint        `json:"company_id" binding:"required"`
	Assets    []ImportRow `json:"assets" binding:"required,min=1"`
}

func (r *BulkImportRequest) ToCommand() usecases.BulkImportCommand {
	rows := make([]assetdto.AssetFields, 0, len(r.Assets))
	for _, row := range r.Assets {
		rows = append(rows, row.ToFields())
	}
	return usecases.BulkImportCommand{CompanyID: r.CompanyID, Rows: rows}
}

// CellString is a spreadsheet cell: JSON text, number or boolean. Rows
// converted from xlsx sheets carry numeric serials and models as numbers.
type CellString string

func (s *CellString) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(raw, []byte("null")):
		*s = ""
	case len(raw) > 0 && raw[0] == '"':
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		*s = CellString(v)
	case bytes.Equal(raw, []byte("true")), bytes.Equal(raw, []byte("false")):
		*s = CellString(raw)
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return fmt.Errorf("expected text or number, got %s", raw)
		}
		*s = CellString(n.String())
	}
	return nil
}

// ImportRow is one bulk import row as sent by spreadsheet clients.
type ImportRow struct {
	AssetName       CellString `json:"asset_name"`
	Description     CellString `json:"description"`
	SerialNumber    CellString `json:"serial_number"`
	Status          CellString `json:"status"`
	DeviceType      CellString `json:"device_type"`
	OwnerLocation   CellString `json:"owner_location"`
	Brand           CellString `json:"brand"`
	Model           CellString `json:"model"`
	OperatingSystem CellString `json:"operating_system"`
}

func (r ImportRow) ToFields() assetdto.AssetFields {
	return assetdto.AssetFields{
		AssetName:       string(r.AssetName),
		Description:     string(r.Description),
		SerialNumber:    string(r.SerialNumber),
		Status:          string(r.Status),
		DeviceType:      string(r.DeviceType),
		OwnerLocation:   string(r.OwnerLocation),
		Brand:           string(r.Brand),
		Model:           string(r.Model),
		OperatingSystem: string(r.OperatingSystem),
	}
}
