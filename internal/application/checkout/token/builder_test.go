package token

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paygate/internal/domain/merchant"
	"paygate/internal/domain/order"
	vo "paygate/internal/domain/order/valueobjects"
	"paygate/internal/infrastructure/checkout/encoding"
	"paygate/internal/infrastructure/checkout/rsacrypt"
)

func testKeyPair(t *testing.T) (pubPEM string, priv *rsa.PrivateKey) {
	t.Helper()

	// The full token payload runs past the 190-byte OAEP capacity of a
	// 2048-bit key, so the merchant key must be at least 3072 bits.
	key, err := rsa.GenerateKey(rand.Reader, 3072)
	require.NoError(t, err)

	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})), key
}

func testConfig(pubPEM string) merchant.Config {
	return merchant.Config{
		Mode:         merchant.ModeDemo,
		MerchantID:   "MID-77",
		ClientID:     "CID-12",
		MerchantName: "Demerara Goods",
		SecretKey:    "super-secret",
		RSAPublicKey: pubPEM,
	}
}

func testOrder(t *testing.T, id uint, cents int64) *order.Order {
	t.Helper()
	o, err := order.NewOrder("1007", vo.NewMoney(cents, "GYD"))
	require.NoError(t, err)
	o.SetID(id)
	return o
}

func TestBuilder_Build(t *testing.T) {
	pubPEM, priv := testKeyPair(t)
	cfg := testConfig(pubPEM)
	o := testOrder(t, 1007, 2500)

	fixed := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	builder := NewBuilderWithClock(func() time.Time { return fixed })

	tok, mtxID, err := builder.Build(o, cfg)
	require.NoError(t, err)
	assert.Equal(t, uint(1007), mtxID, "merchant transaction id must be the order id")

	// The token must decode, decrypt, and parse back to the payload.
	ciphertext, err := encoding.Decode(tok)
	require.NoError(t, err)

	plaintext, err := rsacrypt.Decrypt(priv, ciphertext)
	require.NoError(t, err)

	var payload Payload
	require.NoError(t, json.Unmarshal(plaintext, &payload))

	assert.Equal(t, "super-secret", payload.SecretKey)
	assert.Equal(t, "25.00", payload.Amount)
	assert.Equal(t, "MID-77", payload.MerchantID)
	assert.Equal(t, uint(1007), payload.MerchantTransactionID)
	assert.Equal(t, "Order #1007", payload.ProductDescription)
	assert.Equal(t, "1741964966000", payload.RequestInitiationTime)
	assert.Equal(t, "Demerara Goods", payload.MerchantName)
}

func TestBuilder_StableKeyOrder(t *testing.T) {
	raw, err := json.Marshal(Payload{})
	require.NoError(t, err)

	wantOrder := []string{
		"secretKey", "amount", "merchantId", "merchantTransactionId",
		"productDescription", "requestInitiationTime", "merchantName",
	}

	last := -1
	for _, key := range wantOrder {
		idx := strings.Index(string(raw), `"`+key+`"`)
		require.GreaterOrEqual(t, idx, 0, "key %q missing", key)
		assert.Greater(t, idx, last, "key %q out of order", key)
		last = idx
	}
}

func TestBuilder_NonASCIIRoundTrip(t *testing.T) {
	pubPEM, priv := testKeyPair(t)
	cfg := testConfig(pubPEM)
	cfg.MerchantName = "Café Guyane"
	o := testOrder(t, 12, 999)

	tok, _, err := NewBuilder().Build(o, cfg)
	require.NoError(t, err)

	ciphertext, err := encoding.Decode(tok)
	require.NoError(t, err)
	plaintext, err := rsacrypt.Decrypt(priv, ciphertext)
	require.NoError(t, err)

	var payload Payload
	require.NoError(t, json.Unmarshal(plaintext, &payload))
	assert.Equal(t, "Café Guyane", payload.MerchantName, "UTF-8 must survive encryption untouched")
}

func TestBuilder_ConfigErrors(t *testing.T) {
	pubPEM, _ := testKeyPair(t)

	t.Run("missing public key", func(t *testing.T) {
		cfg := testConfig(pubPEM)
		cfg.RSAPublicKey = ""
		_, _, err := NewBuilder().Build(testOrder(t, 5, 100), cfg)
		assert.Error(t, err)
	})

	t.Run("malformed public key", func(t *testing.T) {
		cfg := testConfig(pubPEM)
		cfg.RSAPublicKey = "-----BEGIN PUBLIC KEY-----\nbogus\n-----END PUBLIC KEY-----"
		_, _, err := NewBuilder().Build(testOrder(t, 5, 100), cfg)
		assert.ErrorIs(t, err, rsacrypt.ErrKeyLoad)
	})
}

func TestBuilder_KeyTooSmallForPayload(t *testing.T) {
	// A realistic payload does not fit a 2048-bit key's OAEP block; the
	// builder must surface the capacity error instead of truncating.
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	cfg := testConfig(string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})))

	_, _, err = NewBuilder().Build(testOrder(t, 1007, 2500), cfg)
	assert.ErrorIs(t, err, rsacrypt.ErrEncrypt)

	t.Run("unpersisted order", func(t *testing.T) {
		pubPEM, _ := testKeyPair(t)
		o, err := order.NewOrder("9", vo.NewMoney(100, "GYD"))
		require.NoError(t, err)
		_, _, err = NewBuilder().Build(o, testConfig(pubPEM))
		assert.Error(t, err)
	})
}

func TestCheckoutURL(t *testing.T) {
	pubPEM, _ := testKeyPair(t)

	t.Run("demo endpoint", func(t *testing.T) {
		cfg := testConfig(pubPEM)
		u := CheckoutURL("tok123", cfg)

		parsed, err := url.Parse(u)
		require.NoError(t, err)
		assert.Equal(t, "gtt-uat-checkout.qpass.com:8743", parsed.Host)
		assert.Equal(t, "tok123", parsed.Query().Get("token"))
		assert.Equal(t, "MID-77", parsed.Query().Get("merchantId"))
		assert.Equal(t, "CID-12", parsed.Query().Get("X-Client-ID"))
	})

	t.Run("live endpoint", func(t *testing.T) {
		cfg := testConfig(pubPEM)
		cfg.Mode = merchant.ModeLive
		u := CheckoutURL("tok123", cfg)
		assert.True(t, strings.HasPrefix(u, "https://gtt-checkout.qpass.com:8743/"))
	})
}
