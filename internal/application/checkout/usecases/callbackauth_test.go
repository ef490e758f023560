package usecases

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "paygate/internal/shared/errors"
)

func TestSanitizeCallbackKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already clean", testCallbackKey, testCallbackKey},
		{"strips path traversal", "../" + testCallbackKey, testCallbackKey},
		{"strips punctuation and spaces", "a b!c@d#e$f-g", "abcdef-g"},
		{"strips percent encoding remnants", "abc%2Fdef", "abc2Fdef"},
		{"keeps hyphens", "key-with-hyphens-123", "key-with-hyphens-123"},
		{"everything stripped", "!@#$%^&*()", ""},
		{"strips multibyte characters", "kééy", "ky"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeCallbackKey(tt.input))
		})
	}
}

func TestVerifyCallbackKey(t *testing.T) {
	t.Run("matching key passes", func(t *testing.T) {
		assert.NoError(t, VerifyCallbackKey(testCallbackKey, testCallbackKey))
	})

	t.Run("match after sanitization passes", func(t *testing.T) {
		assert.NoError(t, VerifyCallbackKey("../"+testCallbackKey, testCallbackKey))
	})

	t.Run("altered key is forbidden", func(t *testing.T) {
		altered := "X" + testCallbackKey[1:]
		err := VerifyCallbackKey(altered, testCallbackKey)
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
	})

	t.Run("empty key is a bad request", func(t *testing.T) {
		err := VerifyCallbackKey("", testCallbackKey)
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeBadRequest, appErr.Type)
	})

	t.Run("key that sanitizes to empty is a bad request", func(t *testing.T) {
		err := VerifyCallbackKey("!!!???", testCallbackKey)
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeBadRequest, appErr.Type)
	})

	t.Run("overlong key is rejected before comparison", func(t *testing.T) {
		err := VerifyCallbackKey(strings.Repeat("a", 65), testCallbackKey)
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeBadRequest, appErr.Type)
	})

	t.Run("unset stored key never matches", func(t *testing.T) {
		err := VerifyCallbackKey(testCallbackKey, "")
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeBadRequest, appErr.Type)
	})
}
