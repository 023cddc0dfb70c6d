package models

import "time"

type CompanyModel struct {
	ID            uint      `gorm:"primaryKey"`
	Name          string    `gorm:"uniqueIndex;size:255;not null"`
	ContactPerson string    `gorm:"size:255"`
	ContactEmail  string    `gorm:"size:255;index"`
	ContactPhone  string    `gorm:"size:50"`
	Address       string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (CompanyModel) TableName() string {
	return "companies"
}
