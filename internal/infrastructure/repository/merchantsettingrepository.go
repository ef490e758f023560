package repository

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"paygate/internal/domain/merchant"
	"paygate/internal/infrastructure/persistence/models"
)

const callbackKeyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

type MerchantSettingRepository struct {
	db *gorm.DB
}

func NewMerchantSettingRepository(db *gorm.DB) *MerchantSettingRepository {
	return &MerchantSettingRepository{db: db}
}

func (r *MerchantSettingRepository) Get(ctx context.Context, key, defaultValue string) (string, error) {
	var model models.MerchantSettingModel

	err := r.db.WithContext(ctx).Where("setting_key = ?", key).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return defaultValue, nil
		}
		return "", fmt.Errorf("failed to get setting %s: %w", key, err)
	}

	return model.Value, nil
}

func (r *MerchantSettingRepository) Set(ctx context.Context, key, value string) error {
	model := models.MerchantSettingModel{SettingKey: key, Value: value}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&model).Error
	if err != nil {
		return fmt.Errorf("failed to set setting %s: %w", key, err)
	}

	return nil
}

// GetOrCreateCallbackKey returns the stored callback key, generating and
// persisting one on first use. The insert ignores conflicts, so concurrent
// first callers race on the unique index and then all read the same winner.
func (r *MerchantSettingRepository) GetOrCreateCallbackKey(ctx context.Context) (string, error) {
	existing, err := r.Get(ctx, merchant.SettingCallbackKey, "")
	if err != nil {
		return "", err
	}
	if existing != "" {
		return existing, nil
	}

	generated, err := generateCallbackKey()
	if err != nil {
		return "", err
	}

	model := models.MerchantSettingModel{SettingKey: merchant.SettingCallbackKey, Value: generated}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_key"}},
			DoNothing: true,
		}).
		Create(&model).Error
	if err != nil {
		return "", fmt.Errorf("failed to store callback key: %w", err)
	}

	return r.Get(ctx, merchant.SettingCallbackKey, "")
}

func generateCallbackKey() (string, error) {
	key := make([]byte, merchant.CallbackKeyLength)
	max := big.NewInt(int64(len(callbackKeyAlphabet)))
	for i := range key {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate callback key: %w", err)
		}
		key[i] = callbackKeyAlphabet[n.Int64()]
	}
	return string(key), nil
}
