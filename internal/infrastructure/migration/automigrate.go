package migration

import (
	"paygate/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.OrderModel{},
		&models.MerchantSettingModel{},
	}
}
