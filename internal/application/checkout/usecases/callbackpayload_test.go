package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCallbackPayload(t *testing.T) {
	t.Run("numeric fields as JSON numbers", func(t *testing.T) {
		p, err := ParseCallbackPayload([]byte(`{"merchantTransactionId":1007,"resultCode":0,"resultMessage":"ok","transactionId":"TX-99"}`))
		require.NoError(t, err)
		assert.Equal(t, uint(1007), p.MerchantTransactionID)
		require.NotNil(t, p.ResultCode)
		assert.Equal(t, 0, *p.ResultCode)
		assert.Equal(t, "ok", p.ResultMessage)
		assert.Equal(t, "TX-99", p.TransactionID)
	})

	t.Run("numeric fields as decimal strings", func(t *testing.T) {
		p, err := ParseCallbackPayload([]byte(`{"merchantTransactionId":"1007","resultCode":"3"}`))
		require.NoError(t, err)
		assert.Equal(t, uint(1007), p.MerchantTransactionID)
		require.NotNil(t, p.ResultCode)
		assert.Equal(t, 3, *p.ResultCode)
	})

	t.Run("missing resultCode stays nil", func(t *testing.T) {
		p, err := ParseCallbackPayload([]byte(`{"merchantTransactionId":5}`))
		require.NoError(t, err)
		assert.Nil(t, p.ResultCode)
	})

	t.Run("null resultCode stays nil", func(t *testing.T) {
		p, err := ParseCallbackPayload([]byte(`{"merchantTransactionId":5,"resultCode":null}`))
		require.NoError(t, err)
		assert.Nil(t, p.ResultCode)
	})

	t.Run("empty object yields zero values", func(t *testing.T) {
		p, err := ParseCallbackPayload([]byte(`{}`))
		require.NoError(t, err)
		assert.Equal(t, uint(0), p.MerchantTransactionID)
		assert.Nil(t, p.ResultCode)
		assert.Empty(t, p.ResultMessage)
		assert.Empty(t, p.TransactionID)
	})

	t.Run("unknown fields are ignored", func(t *testing.T) {
		p, err := ParseCallbackPayload([]byte(`{"merchantTransactionId":9,"somethingNew":{"a":1}}`))
		require.NoError(t, err)
		assert.Equal(t, uint(9), p.MerchantTransactionID)
	})

	malformed := []struct {
		name  string
		input string
	}{
		{"not JSON", `not json at all`},
		{"JSON array", `[1,2,3]`},
		{"JSON scalar", `42`},
		{"JSON string", `"hello"`},
		{"transaction id is an object", `{"merchantTransactionId":{"v":1}}`},
		{"transaction id is fractional", `{"merchantTransactionId":10.5}`},
		{"transaction id is negative", `{"merchantTransactionId":-4}`},
		{"transaction id is a word", `{"merchantTransactionId":"abc"}`},
		{"result code is an array", `{"resultCode":[0]}`},
		{"result code is a word", `{"resultCode":"ok"}`},
		{"result message is an object", `{"resultMessage":{}}`},
		{"empty input", ``},
	}

	for _, tt := range malformed {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCallbackPayload([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedPayload)
		})
	}
}
