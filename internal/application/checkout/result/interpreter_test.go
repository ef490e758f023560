package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int {
	return &v
}

func TestInterpret_KnownCodes(t *testing.T) {
	tests := []struct {
		name        string
		code        int
		wantStatus  Status
		wantMessage string
	}{
		{"zero is success", 0, StatusSuccess, "Payment completed."},
		{"agent not registered", 1, StatusFailed, "Agent Not Registered."},
		{"payment failed", 2, StatusFailed, "Payment Failed."},
		{"invalid secret key", 3, StatusFailed, "Invalid Secret Key."},
		{"merchant id mismatch", 4, StatusFailed, "Merchant ID Mismatch."},
		{"token decryption failed", 5, StatusFailed, "Token Decryption Failed."},
		{"cancelled by user", 6, StatusCancelled, "Payment cancelled by user."},
		{"request timed out", 7, StatusFailed, "Request Timed Out."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			outcome := Interpret(intPtr(tc.code), "ignored for known codes")
			assert.Equal(t, tc.wantStatus, outcome.Status)
			assert.Equal(t, tc.wantMessage, outcome.Message)
		})
	}
}

func TestInterpret_UnknownCode(t *testing.T) {
	outcome := Interpret(intPtr(42), "hsm offline")

	assert.Equal(t, StatusFailed, outcome.Status)
	assert.Contains(t, outcome.Message, "42")
	assert.Contains(t, outcome.Message, "hsm offline")
}

func TestInterpret_MissingCode(t *testing.T) {
	outcome := Interpret(nil, "no code supplied")

	assert.Equal(t, StatusFailed, outcome.Status, "absent resultCode must never be success")
	assert.Contains(t, outcome.Message, "no code supplied")
}

func TestInterpret_OnlyZeroIsSuccess(t *testing.T) {
	for code := -3; code <= 50; code++ {
		outcome := Interpret(intPtr(code), "")
		if code == 0 {
			assert.True(t, outcome.IsSuccess())
		} else {
			assert.False(t, outcome.IsSuccess(), "code %d must not be success", code)
		}
	}
}
