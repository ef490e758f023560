package usecases

import (
	"context"
	"fmt"

	"paygate/internal/domain/merchant"
	apperrors "paygate/internal/shared/errors"
	"paygate/internal/shared/logger"
	"paygate/internal/shared/utils"
)

// CheckoutSettingsResponse is the admin view of the gateway settings.
// Secret material is masked; it can be overwritten but never read back.
type CheckoutSettingsResponse struct {
	Mode          string `json:"mode"`
	MerchantID    string `json:"merchant_id"`
	ClientID      string `json:"client_id"`
	MerchantName  string `json:"merchant_name"`
	SecretKey     string `json:"secret_key"`
	RSAPublicKey  string `json:"rsa_public_key"`
	RSAPrivateKey string `json:"rsa_private_key"`
	CallbackPath  string `json:"callback_path"`
}

type GetCheckoutSettingsUseCase struct {
	settings merchant.SettingStore
	defaults merchant.Config
	logger   logger.Interface
}

func NewGetCheckoutSettingsUseCase(settings merchant.SettingStore, defaults merchant.Config, log logger.Interface) *GetCheckoutSettingsUseCase {
	return &GetCheckoutSettingsUseCase{settings: settings, defaults: defaults, logger: log}
}

func (uc *GetCheckoutSettingsUseCase) Execute(ctx context.Context) (*CheckoutSettingsResponse, error) {
	cfg, err := merchant.LoadConfig(ctx, uc.settings, uc.defaults)
	if err != nil {
		uc.logger.Errorw("failed to load merchant configuration", "error", err)
		return nil, apperrors.NewInternalError("Failed to load settings")
	}

	resp := &CheckoutSettingsResponse{
		Mode:         cfg.Mode.String(),
		MerchantID:   cfg.MerchantID,
		ClientID:     cfg.ClientID,
		MerchantName: cfg.MerchantName,
		RSAPublicKey: cfg.RSAPublicKey,
		CallbackPath: fmt.Sprintf("/wc-api/mmg-checkout/%s", cfg.CallbackKey),
	}

	if cfg.SecretKey != "" {
		resp.SecretKey = utils.MaskSecret(cfg.SecretKey)
	}
	if cfg.RSAPrivateKey != "" {
		resp.RSAPrivateKey = "[configured]"
	}

	return resp, nil
}
