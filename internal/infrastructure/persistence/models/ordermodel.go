package models

import (
	"time"

	"gorm.io/datatypes"
)

// OrderModel is the GORM model for the orders table.
type OrderModel struct {
	ID            uint           `gorm:"primaryKey"`
	Number        string         `gorm:"uniqueIndex;size:64;not null"`
	AmountCents   int64          `gorm:"not null"`
	Currency      string         `gorm:"size:10;not null;default:'GYD'"`
	Status        string         `gorm:"size:20;not null;index"`
	TransactionID *string        `gorm:"size:128"`
	Notes         datatypes.JSON `gorm:"type:json"`
	Metadata      datatypes.JSON `gorm:"type:json"`
	Version       int            `gorm:"default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}
