package usecases

import (
	"context"

	"paygate/internal/domain/merchant"
	"paygate/internal/infrastructure/checkout/rsacrypt"
	apperrors "paygate/internal/shared/errors"
	"paygate/internal/shared/logger"
)

// UpdateCheckoutSettingsCommand carries a partial settings update. Nil fields
// are left untouched.
type UpdateCheckoutSettingsCommand struct {
	Mode          *string `json:"mode" validate:"omitempty,oneof=live demo"`
	MerchantID    *string `json:"merchant_id"`
	ClientID      *string `json:"client_id"`
	MerchantName  *string `json:"merchant_name"`
	SecretKey     *string `json:"secret_key"`
	RSAPublicKey  *string `json:"rsa_public_key"`
	RSAPrivateKey *string `json:"rsa_private_key"`
}

// minTokenCapacity is the smallest OAEP block, in bytes, that fits a full
// checkout token payload. A 3072-bit key gives 318 bytes.
const minTokenCapacity = 256

type UpdateCheckoutSettingsUseCase struct {
	settings merchant.SettingStore
	logger   logger.Interface
}

func NewUpdateCheckoutSettingsUseCase(settings merchant.SettingStore, log logger.Interface) *UpdateCheckoutSettingsUseCase {
	return &UpdateCheckoutSettingsUseCase{settings: settings, logger: log}
}

func (uc *UpdateCheckoutSettingsUseCase) Execute(ctx context.Context, cmd UpdateCheckoutSettingsCommand) error {
	if cmd.Mode != nil {
		if _, err := merchant.NewMode(*cmd.Mode); err != nil {
			return apperrors.NewValidationError("Invalid mode", err.Error())
		}
	}
	// Key material is parsed before it is stored so a paste error surfaces
	// here instead of on the first live checkout.
	if cmd.RSAPublicKey != nil && *cmd.RSAPublicKey != "" {
		pub, err := rsacrypt.ParsePublicKey(*cmd.RSAPublicKey)
		if err != nil {
			return apperrors.NewValidationError("Invalid RSA public key", err.Error())
		}
		// A realistic token payload is ~200 bytes; a 2048-bit key caps a
		// single OAEP block at 190 and would fail on the first checkout.
		if rsacrypt.MaxPlaintextSize(pub) < minTokenCapacity {
			return apperrors.NewValidationError("Invalid RSA public key",
				"key is too small to carry a checkout token, use at least 3072 bits")
		}
	}
	if cmd.RSAPrivateKey != nil && *cmd.RSAPrivateKey != "" {
		if _, err := rsacrypt.ParsePrivateKey(*cmd.RSAPrivateKey); err != nil {
			return apperrors.NewValidationError("Invalid RSA private key", err.Error())
		}
	}

	updates := []struct {
		key   string
		value *string
	}{
		{merchant.SettingMode, cmd.Mode},
		{merchant.SettingMerchantID, cmd.MerchantID},
		{merchant.SettingClientID, cmd.ClientID},
		{merchant.SettingMerchantName, cmd.MerchantName},
		{merchant.SettingSecretKey, cmd.SecretKey},
		{merchant.SettingRSAPublicKey, cmd.RSAPublicKey},
		{merchant.SettingRSAPrivateKey, cmd.RSAPrivateKey},
	}

	for _, u := range updates {
		if u.value == nil {
			continue
		}
		if err := uc.settings.Set(ctx, u.key, *u.value); err != nil {
			uc.logger.Errorw("failed to store setting", "key", u.key, "error", err)
			return apperrors.NewInternalError("Failed to update settings")
		}
	}

	uc.logger.Infow("checkout settings updated")
	return nil
}
