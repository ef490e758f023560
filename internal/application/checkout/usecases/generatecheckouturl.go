package usecases

import (
	"context"

	"paygate/internal/application/checkout/token"
	"paygate/internal/domain/merchant"
	"paygate/internal/domain/order"
	apperrors "paygate/internal/shared/errors"
	"paygate/internal/shared/logger"
)

// TransactionIDMetadataKey is the order metadata key holding the merchant
// transaction id sent to the gateway. It is persisted before the shopper is
// redirected so the callback can always be reconciled.
const TransactionIDMetadataKey = "mmg_transaction_id"

type GenerateCheckoutURLCommand struct {
	OrderID uint `json:"order_id" validate:"required"`
}

type GenerateCheckoutURLResult struct {
	CheckoutURL           string `json:"checkout_url"`
	MerchantTransactionID uint   `json:"merchant_transaction_id"`
}

// GenerateCheckoutURLUseCase builds the encrypted checkout token for an order
// and returns the gateway URL the shopper is redirected to.
type GenerateCheckoutURLUseCase struct {
	orderRepo order.Repository
	settings  merchant.SettingStore
	defaults  merchant.Config
	builder   *token.Builder
	logger    logger.Interface
}

func NewGenerateCheckoutURLUseCase(
	orderRepo order.Repository,
	settings merchant.SettingStore,
	defaults merchant.Config,
	builder *token.Builder,
	log logger.Interface,
) *GenerateCheckoutURLUseCase {
	return &GenerateCheckoutURLUseCase{
		orderRepo: orderRepo,
		settings:  settings,
		defaults:  defaults,
		builder:   builder,
		logger:    log,
	}
}

func (uc *GenerateCheckoutURLUseCase) Execute(ctx context.Context, cmd GenerateCheckoutURLCommand) (*GenerateCheckoutURLResult, error) {
	cfg, err := merchant.LoadConfig(ctx, uc.settings, uc.defaults)
	if err != nil {
		uc.logger.Errorw("failed to load merchant configuration", "error", err)
		return nil, apperrors.NewInternalError("Error generating checkout URL")
	}

	if err := cfg.ValidateForCheckout(); err != nil {
		uc.logger.Warnw("checkout configuration incomplete", "error", err)
		return nil, apperrors.NewValidationError("Payment gateway is not configured", err.Error())
	}

	o, err := uc.orderRepo.GetByID(ctx, cmd.OrderID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewBadRequestError("Invalid order")
		}
		uc.logger.Errorw("failed to load order", "order_id", cmd.OrderID, "error", err)
		return nil, apperrors.NewInternalError("Error generating checkout URL")
	}

	tok, merchantTxID, err := uc.builder.Build(o, cfg)
	if err != nil {
		uc.logger.Errorw("failed to build checkout token", "order_id", o.ID(), "error", err)
		return nil, apperrors.NewInternalError("Error generating checkout URL")
	}

	// The transaction id must survive a process restart between redirect and
	// callback, so it is written to the order before the URL leaves here.
	o.SetMetadata(TransactionIDMetadataKey, merchantTxID)
	if err := uc.orderRepo.Update(ctx, o); err != nil {
		uc.logger.Errorw("failed to persist transaction id", "order_id", o.ID(), "error", err)
		return nil, apperrors.NewInternalError("Error generating checkout URL")
	}

	uc.logger.Infow("checkout URL generated",
		"order_id", o.ID(),
		"order_number", o.Number(),
		"mode", cfg.Mode.String(),
	)

	return &GenerateCheckoutURLResult{
		CheckoutURL:           token.CheckoutURL(tok, cfg),
		MerchantTransactionID: merchantTxID,
	}, nil
}
