// Package encoding implements the URL-safe base64 variant the MMG gateway
// uses for checkout tokens: standard URL-safe alphabet with trailing padding
// stripped on encode and strict validation on decode.
package encoding

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// ErrDecode is returned when a token is not valid URL-safe base64.
var ErrDecode = errors.New("invalid url-safe base64")

// Encode encodes data with the URL-safe alphabet and no padding.
func Encode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// Decode reverses Encode. It validates the alphabet, restores padding, and
// uses strict decoding so non-canonical input is rejected instead of being
// silently truncated.
func Decode(s string) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if !isURLSafeChar(s[i]) {
			return nil, fmt.Errorf("%w: invalid character at position %d", ErrDecode, i)
		}
	}

	switch len(s) % 4 {
	case 1:
		return nil, fmt.Errorf("%w: length %d cannot be padded to a base64 block", ErrDecode, len(s))
	case 2:
		s += "=="
	case 3:
		s += "="
	}

	decoded, err := base64.URLEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return decoded, nil
}

func isURLSafeChar(c byte) bool {
	return (c >= 'A' && c <= 'Z') ||
		(c >= 'a' && c <= 'z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '_'
}
