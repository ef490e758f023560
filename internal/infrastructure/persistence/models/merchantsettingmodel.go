package models

import (
	"time"
)

// MerchantSettingModel is the GORM model for the merchant_settings table.
// One row per setting key, mirroring the option-per-key layout the gateway
// settings have always used.
type MerchantSettingModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	SettingKey string    `gorm:"column:setting_key;type:varchar(100);not null;uniqueIndex"`
	Value      string    `gorm:"column:value;type:text"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (MerchantSettingModel) TableName() string {
	return "merchant_settings"
}
