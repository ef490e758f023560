// Package token builds the encrypted checkout tokens handed to the MMG
// hosted payment page.
package token

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"paygate/internal/domain/merchant"
	"paygate/internal/domain/order"
	"paygate/internal/infrastructure/checkout/encoding"
	"paygate/internal/infrastructure/checkout/rsacrypt"
	"paygate/internal/shared/biztime"
)

// Payload is the canonical checkout token content. Field order is the wire
// key order; encoding/json preserves struct declaration order so the
// serialization round-trips stably.
type Payload struct {
	SecretKey             string `json:"secretKey"`
	Amount                string `json:"amount"`
	MerchantID            string `json:"merchantId"`
	MerchantTransactionID uint   `json:"merchantTransactionId"`
	ProductDescription    string `json:"productDescription"`
	RequestInitiationTime string `json:"requestInitiationTime"`
	MerchantName          string `json:"merchantName"`
}

// Builder assembles, encrypts, and encodes checkout tokens.
type Builder struct {
	now func() time.Time
}

func NewBuilder() *Builder {
	return &Builder{now: biztime.NowUTC}
}

// NewBuilderWithClock is for tests that need a fixed initiation time.
func NewBuilderWithClock(now func() time.Time) *Builder {
	return &Builder{now: now}
}

// Build produces the URL-safe encrypted token for an order and returns it
// together with the merchant transaction id it embedded (the order's own id).
// The caller must persist that id on the order before redirecting the
// shopper: it is the join key the callback path looks the order up by.
func (b *Builder) Build(o *order.Order, cfg merchant.Config) (string, uint, error) {
	if err := cfg.ValidateForCheckout(); err != nil {
		return "", 0, err
	}
	if o.ID() == 0 {
		return "", 0, fmt.Errorf("order has no persistent id")
	}

	payload := Payload{
		SecretKey:             cfg.SecretKey,
		Amount:                o.Amount().Decimal(),
		MerchantID:            cfg.MerchantID,
		MerchantTransactionID: o.ID(),
		ProductDescription:    fmt.Sprintf("Order #%s", o.Number()),
		RequestInitiationTime: biztime.EpochMillisString(b.now()),
		MerchantName:          cfg.MerchantName,
	}

	// Encrypt the exact UTF-8 bytes of the JSON serialization. Earlier
	// integrations transcoded to an 8-bit charset first, which corrupts any
	// non-ASCII merchant name or description.
	plaintext, err := json.Marshal(payload)
	if err != nil {
		return "", 0, fmt.Errorf("failed to serialize token payload: %w", err)
	}

	pub, err := rsacrypt.ParsePublicKey(cfg.RSAPublicKey)
	if err != nil {
		return "", 0, err
	}

	ciphertext, err := rsacrypt.Encrypt(pub, plaintext)
	if err != nil {
		return "", 0, err
	}

	return encoding.Encode(ciphertext), o.ID(), nil
}

// CheckoutURL appends the token and merchant identifiers to the mode-selected
// hosted payment page endpoint.
func CheckoutURL(tok string, cfg merchant.Config) string {
	params := url.Values{}
	params.Set("token", tok)
	params.Set("merchantId", cfg.MerchantID)
	params.Set("X-Client-ID", cfg.ClientID)
	return cfg.Mode.CheckoutEndpoint() + "?" + params.Encode()
}
