package models

import "time"

type TicketModel struct {
	ID             uint      `gorm:"primaryKey"`
	CompanyID      uint      `gorm:"not null;index"`
	UserID         uint      `gorm:"not null;index"`
	AssignedUserID *uint     `gorm:"index"`
	Title          string    `gorm:"size:255;not null"`
	Description    string    `gorm:"type:text;not null"`
	CustomerEmail  *string   `gorm:"size:255"`
	Priority       string    `gorm:"size:20;not null;default:Normal;index"`
	Status         string    `gorm:"size:20;not null;default:Open;index"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime;index"`

	// Association fields exist for AutoMigrate constraints only; writes omit them.
	Company      *CompanyModel `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	User         *UserModel    `gorm:"foreignKey:UserID"`
	AssignedUser *UserModel    `gorm:"foreignKey:AssignedUserID;constraint:OnDelete:SET NULL"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketAssetModel struct {
	TicketID uint `gorm:"primaryKey"`
	AssetID  uint `gorm:"primaryKey;index"`

	Ticket *TicketModel `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
	Asset  *AssetModel  `gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE"`
}

func (TicketAssetModel) TableName() string {
	return "ticket_assets"
}

type TicketUpdateModel struct {
	ID         uint      `gorm:"primaryKey"`
	TicketID   uint      `gorm:"not null;index"`
	UserID     uint      `gorm:"not null;index"`
	UpdateText string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index"`

	Ticket *TicketModel `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
	User   *UserModel   `gorm:"foreignKey:UserID"`
}

func (TicketUpdateModel) TableName() string {
	return "ticket_updates"
}

// All returns every persistence model in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&CompanyModel{},
		&AssetModel{},
		&TicketModel{},
		&TicketAssetModel{},
		&TicketUpdateModel{},
	}
}
