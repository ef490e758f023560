package utils

import "strings"

// MaskSecret masks a secret value for safe logging, keeping only a short
// prefix. Callback keys and merchant secrets must never be logged in full.
// Example: "h7Kq2MpXw9..." -> "h7Kq****"
func MaskSecret(secret string) string {
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return secret[:4] + "****"
}
