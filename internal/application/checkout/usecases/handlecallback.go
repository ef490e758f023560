package usecases

import (
	"context"
	"fmt"

	"paygate/internal/application/checkout/result"
	"paygate/internal/domain/merchant"
	"paygate/internal/domain/order"
	"paygate/internal/infrastructure/checkout/encoding"
	"paygate/internal/infrastructure/checkout/rsacrypt"
	"paygate/internal/shared/biztime"
	apperrors "paygate/internal/shared/errors"
	"paygate/internal/shared/goroutine"
	"paygate/internal/shared/logger"
)

// RedirectURLProvider resolves the storefront pages the shopper lands on
// after the gateway posts its result.
type RedirectURLProvider interface {
	OrderReceivedURL(o *order.Order) string
	OrderPaymentRetryURL(o *order.Order) string
}

type HandleCallbackCommand struct {
	CallbackKey string
	Token       string
}

type HandleCallbackResult struct {
	RedirectURL string
}

// HandleCallbackUseCase processes the gateway's payment result callback:
// authenticate the callback key, decrypt and parse the token, apply the
// outcome to the order exactly once, and pick the shopper redirect.
type HandleCallbackUseCase struct {
	orderRepo order.Repository
	settings  merchant.SettingStore
	defaults  merchant.Config
	urls      RedirectURLProvider
	notifier  PaidOrderNotifier
	logger    logger.Interface
}

func NewHandleCallbackUseCase(
	orderRepo order.Repository,
	settings merchant.SettingStore,
	defaults merchant.Config,
	urls RedirectURLProvider,
	notifier PaidOrderNotifier,
	log logger.Interface,
) *HandleCallbackUseCase {
	return &HandleCallbackUseCase{
		orderRepo: orderRepo,
		settings:  settings,
		defaults:  defaults,
		urls:      urls,
		notifier:  notifier,
		logger:    log,
	}
}

func (uc *HandleCallbackUseCase) Execute(ctx context.Context, cmd HandleCallbackCommand) (*HandleCallbackResult, error) {
	cfg, err := merchant.LoadConfig(ctx, uc.settings, uc.defaults)
	if err != nil {
		uc.logger.Errorw("failed to load merchant configuration", "error", err)
		return nil, apperrors.NewInternalError("Error processing callback")
	}

	// Authentication comes first. No decoding or decryption happens for a
	// request that cannot present the callback key.
	if err := VerifyCallbackKey(cmd.CallbackKey, cfg.CallbackKey); err != nil {
		return nil, err
	}

	if cmd.Token == "" {
		return nil, apperrors.NewBadRequestError("Invalid token")
	}

	// A missing private key is the merchant's misconfiguration, not a bad
	// request, so it surfaces as a server error rather than the uniform
	// decrypt failure.
	if err := cfg.ValidateForCallback(); err != nil {
		uc.logger.Errorw("callback configuration incomplete", "error", err)
		return nil, apperrors.NewInternalError("Error processing callback")
	}

	payload, err := uc.decryptToken(cmd.Token, cfg)
	if err != nil {
		// One client-visible message for every decode, decrypt, and parse
		// failure so the response does not reveal which stage rejected it.
		return nil, apperrors.NewBadRequestError("Error decrypting token")
	}

	o, err := uc.orderRepo.GetByID(ctx, payload.MerchantTransactionID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			uc.logger.Warnw("callback for unknown order", "merchant_transaction_id", payload.MerchantTransactionID)
			return nil, apperrors.NewBadRequestError("Invalid order")
		}
		uc.logger.Errorw("failed to load order", "order_id", payload.MerchantTransactionID, "error", err)
		return nil, apperrors.NewInternalError("Error processing callback")
	}

	outcome := result.Interpret(payload.ResultCode, payload.ResultMessage)

	if o.Status().IsTerminal() {
		// Replayed callback. The order keeps its recorded state; the shopper
		// still gets a sensible page.
		uc.logger.Infow("duplicate callback ignored",
			"order_id", o.ID(),
			"status", o.Status().String(),
		)
		return &HandleCallbackResult{RedirectURL: uc.redirectFor(o)}, nil
	}

	switch outcome.Status {
	case result.StatusSuccess:
		if err := uc.applyPayment(ctx, o, payload.TransactionID); err != nil {
			return nil, err
		}
	case result.StatusCancelled:
		if err := o.Cancel(outcome.Message); err != nil {
			return nil, apperrors.NewConflictError(err.Error())
		}
		o.AddNote(fmt.Sprintf("Payment failed. Reason: %s", outcome.Message))
		if err := uc.orderRepo.Update(ctx, o); err != nil {
			uc.logger.Errorw("failed to persist order cancellation", "order_id", o.ID(), "error", err)
			return nil, apperrors.NewInternalError("Error processing callback")
		}
	default:
		if err := o.Fail(outcome.Message); err != nil {
			return nil, apperrors.NewConflictError(err.Error())
		}
		o.AddNote(fmt.Sprintf("Payment failed. Reason: %s", outcome.Message))
		if err := uc.orderRepo.Update(ctx, o); err != nil {
			uc.logger.Errorw("failed to persist order failure", "order_id", o.ID(), "error", err)
			return nil, apperrors.NewInternalError("Error processing callback")
		}
	}

	uc.logger.Infow("callback processed",
		"order_id", o.ID(),
		"order_number", o.Number(),
		"outcome", string(outcome.Status),
	)

	return &HandleCallbackResult{RedirectURL: uc.redirectFor(o)}, nil
}

// decryptToken runs the inbound pipeline: URL-safe base64 decode, RSA-OAEP
// decrypt, typed payload parse. Stage details go to the log only.
func (uc *HandleCallbackUseCase) decryptToken(tok string, cfg merchant.Config) (*CallbackPayload, error) {
	ciphertext, err := encoding.Decode(tok)
	if err != nil {
		uc.logger.Warnw("callback token is not valid URL-safe base64", "error", err)
		return nil, err
	}

	priv, err := rsacrypt.ParsePrivateKey(cfg.RSAPrivateKey)
	if err != nil {
		uc.logger.Errorw("failed to parse RSA private key", "error", err)
		return nil, err
	}

	plaintext, err := rsacrypt.Decrypt(priv, ciphertext)
	if err != nil {
		uc.logger.Warnw("callback token decryption failed")
		return nil, err
	}

	payload, err := ParseCallbackPayload(plaintext)
	if err != nil {
		uc.logger.Warnw("callback payload rejected", "error", err)
		return nil, err
	}

	return payload, nil
}

func (uc *HandleCallbackUseCase) applyPayment(ctx context.Context, o *order.Order, transactionID string) error {
	if err := o.MarkAsPaid(transactionID); err != nil {
		return apperrors.NewConflictError(err.Error())
	}
	o.AddNote(fmt.Sprintf("Payment completed via MMG Checkout. Transaction ID: %s", transactionID))

	if err := uc.orderRepo.Update(ctx, o); err != nil {
		uc.logger.Errorw("failed to persist paid order", "order_id", o.ID(), "error", err)
		return apperrors.NewInternalError("Error processing callback")
	}

	if uc.notifier != nil {
		n := PaidOrderNotification{
			OrderID:       o.ID(),
			OrderNumber:   o.Number(),
			Amount:        o.Amount(),
			TransactionID: transactionID,
			PaidAt:        biztime.NowUTC(),
		}
		goroutine.SafeGo(uc.logger, "paid-order-notification", func() {
			if err := uc.notifier.NotifyOrderPaid(context.Background(), n); err != nil {
				uc.logger.Errorw("failed to send paid order notification", "order_id", n.OrderID, "error", err)
			}
		})
	}

	return nil
}

func (uc *HandleCallbackUseCase) redirectFor(o *order.Order) string {
	if o.Status().IsPaid() {
		return uc.urls.OrderReceivedURL(o)
	}
	return uc.urls.OrderPaymentRetryURL(o)
}
