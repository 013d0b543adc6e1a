package models

import (
	"time"

	"gorm.io/datatypes"
)

// ProductModel represents the database persistence model for products.
type ProductModel struct {
	ID             uint           `gorm:"primarykey"`
	Name           string         `gorm:"not null;size:255"`
	Description    string         `gorm:"type:text"`
	Price          float64        `gorm:"not null;default:0"`
	Category       string         `gorm:"size:100;index"`
	Brand          string         `gorm:"size:100;index"`
	Stock          int            `gorm:"not null;default:0"`
	SKU            string         `gorm:"size:100;index"`
	Tags           datatypes.JSON `gorm:"type:json"`
	Images         datatypes.JSON `gorm:"type:json"`
	Specifications datatypes.JSON `gorm:"type:json"`
	IsActive       bool           `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}
