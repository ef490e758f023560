package usecases

import (
	"crypto/subtle"
	"strings"

	apperrors "paygate/internal/shared/errors"
)

const maxCallbackKeyLength = 64

// SanitizeCallbackKey strips every character outside [A-Za-z0-9-] from a
// claimed callback key. The stored key is generated from that alphabet, so
// anything removed here could never have matched.
func SanitizeCallbackKey(claimed string) string {
	var b strings.Builder
	b.Grow(len(claimed))
	for i := 0; i < len(claimed); i++ {
		c := claimed[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// VerifyCallbackKey authenticates a claimed callback key against the stored
// one using a constant-time comparison. It must run before any cryptographic
// work on the request.
func VerifyCallbackKey(claimed, stored string) error {
	sanitized := SanitizeCallbackKey(claimed)
	if sanitized == "" {
		return apperrors.NewBadRequestError("Missing callback key")
	}
	if len(sanitized) > maxCallbackKeyLength {
		return apperrors.NewBadRequestError("Invalid callback key")
	}
	if stored == "" {
		return apperrors.NewBadRequestError("Invalid callback key")
	}
	if subtle.ConstantTimeCompare([]byte(sanitized), []byte(stored)) != 1 {
		return apperrors.NewForbiddenError("Invalid callback key")
	}
	return nil
}
