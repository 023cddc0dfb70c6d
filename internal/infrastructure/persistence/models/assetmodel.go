package models

import "time"

type AssetModel struct {
	ID              uint      `gorm:"primaryKey"`
	CompanyID       uint      `gorm:"not null;index"`
	AssetName       string    `gorm:"size:255;not null"`
	SerialNumber    *string   `gorm:"uniqueIndex;size:255"`
	Status          string    `gorm:"size:50;not null;default:In Use"`
	DeviceType      string    `gorm:"size:100"`
	OwnerLocation   string    `gorm:"size:255"`
	Brand           string    `gorm:"size:100"`
	Model           string    `gorm:"size:100"`
	OperatingSystem string    `gorm:"size:100"`
	Description     string    `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`

	// Only declared so AutoMigrate emits the cascading foreign key.
	Company *CompanyModel `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

func (AssetModel) TableName() string {
	return "assets"
}
