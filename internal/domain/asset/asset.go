package asset

import (
	"fmt"
	"strings"
	"time"
)

// Details are the client-editable fields of an asset. They are replaced as a
// whole on update.
type Details struct {
	AssetName       string
	Description     string
	SerialNumber    *string
	Status          Status
	DeviceType      string
	OwnerLocation   string
	Brand           string
	Model           string
	OperatingSystem string
}

// normalize trims the name and turns a blank serial number into nil so the
// unique index only applies to real serials.
func (d Details) normalize() (Details, error) {
	d.AssetName = strings.TrimSpace(d.AssetName)
	if d.AssetName == "" {
		return d, fmt.Errorf("asset_name is required")
	}
	if d.SerialNumber != nil {
		sn := strings.TrimSpace(*d.SerialNumber)
		if sn == "" {
			d.SerialNumber = nil
		} else {
			d.SerialNumber = &sn
		}
	}
	if d.Status == "" {
		d.Status = DefaultStatus
	}
	if !d.Status.IsValid() {
		return d, fmt.Errorf("invalid status: %s", d.Status)
	}
	return d, nil
}

type Asset struct {
	id        uint
	companyID uint
	details   Details
	createdAt time.Time
}

func NewAsset(companyID uint, details Details) (*Asset, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company_id is required")
	}
	a := &Asset{companyID: companyID, createdAt: time.Now()}
	if err := a.Replace(details); err != nil {
		return nil, err
	}
	return a, nil
}

func ReconstructAsset(id, companyID uint, details Details, createdAt time.Time) (*Asset, error) {
	if id == 0 {
		return nil, fmt.Errorf("asset ID cannot be zero")
	}
	return &Asset{id: id, companyID: companyID, details: details, createdAt: createdAt}, nil
}

func (a *Asset) ID() uint             { return a.id }
func (a *Asset) CompanyID() uint      { return a.companyID }
func (a *Asset) Details() Details     { return a.details }
func (a *Asset) CreatedAt() time.Time { return a.createdAt }

func (a *Asset) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("asset ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("asset ID cannot be zero")
	}
	a.id = id
	return nil
}

// Replace validates and swaps in a full set of details.
func (a *Asset) Replace(details Details) error {
	d, err := details.normalize()
	if err != nil {
		return err
	}
	a.details = d
	return nil
}

// MoveTo reassigns the asset to another company.
func (a *Asset) MoveTo(companyID uint) error {
	if companyID == 0 {
		return fmt.Errorf("company_id is required")
	}
	a.companyID = companyID
	return nil
}
