package models

import (
	"github.com/shopspring/decimal"
)

type Ad struct {
	BaseModel
	Title       string          `gorm:"not null"`
	Description string          `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Condition   Condition       `gorm:"type:varchar(20);not null"`
	IsAvailable *bool           `gorm:"default:true"`

	CategoryID uint `gorm:"not null;index"`
	CityID     uint `gorm:"not null;index"`
	UserID     uint `gorm:"not null;index"`

	// Relations
	Category Category
	City     City
	User     User
	Image    *Attachment `gorm:"foreignKey:AdID"`
}

type Attachment struct {
	BaseModel
	AdID        uint   `gorm:"not null;uniqueIndex"`
	Filename    string `gorm:"not null"`
	SavedName   string `gorm:"not null"`
	FilePath    string `gorm:"not null"`
	ContentType string
	Extension   string
}
