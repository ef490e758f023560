package rsacrypt

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateKeyPEMs(t *testing.T, bits int) (pubPEM, privPEM string) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, bits)
	require.NoError(t, err)

	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pubPEM = string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER}))

	privDER, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	privPEM = string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privDER}))

	return pubPEM, privPEM
}

func TestParsePublicKey(t *testing.T) {
	pubPEM, _ := generateKeyPEMs(t, 2048)

	t.Run("valid PKIX key", func(t *testing.T) {
		pub, err := ParsePublicKey(pubPEM)
		require.NoError(t, err)
		assert.Equal(t, 256, pub.Size())
	})

	t.Run("valid PKCS1 key", func(t *testing.T) {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)
		pkcs1 := pem.EncodeToMemory(&pem.Block{
			Type:  "RSA PUBLIC KEY",
			Bytes: x509.MarshalPKCS1PublicKey(&key.PublicKey),
		})
		_, err = ParsePublicKey(string(pkcs1))
		assert.NoError(t, err)
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := ParsePublicKey("not a key")
		assert.ErrorIs(t, err, ErrKeyLoad)
	})

	t.Run("valid PEM wrapping non-key data", func(t *testing.T) {
		block := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: []byte("junk")})
		_, err := ParsePublicKey(string(block))
		assert.ErrorIs(t, err, ErrKeyLoad)
	})
}

func TestParsePrivateKey(t *testing.T) {
	_, privPEM := generateKeyPEMs(t, 2048)

	t.Run("valid PKCS8 key", func(t *testing.T) {
		priv, err := ParsePrivateKey(privPEM)
		require.NoError(t, err)
		assert.NotNil(t, priv)
	})

	t.Run("valid PKCS1 key", func(t *testing.T) {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)
		pkcs1 := pem.EncodeToMemory(&pem.Block{
			Type:  "RSA PRIVATE KEY",
			Bytes: x509.MarshalPKCS1PrivateKey(key),
		})
		_, err = ParsePrivateKey(string(pkcs1))
		assert.NoError(t, err)
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := ParsePrivateKey("-----nothing-----")
		assert.ErrorIs(t, err, ErrKeyLoad)
	})
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	pubPEM, privPEM := generateKeyPEMs(t, 2048)
	pub, err := ParsePublicKey(pubPEM)
	require.NoError(t, err)
	priv, err := ParsePrivateKey(privPEM)
	require.NoError(t, err)

	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"json payload", []byte(`{"secretKey":"sk","amount":"25.00","merchantId":"M1"}`)},
		{"utf8 merchant name", []byte(`{"merchantName":"Café Guyane — Georgetown"}`)},
		{"raw utf8 bytes", []byte("résumé ¥ 店")},
		{"empty", []byte{}},
		{"at OAEP capacity", make([]byte, 256-2*32-2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ciphertext, err := Encrypt(pub, tc.plaintext)
			require.NoError(t, err)
			assert.Len(t, ciphertext, pub.Size())

			decrypted, err := Decrypt(priv, ciphertext)
			require.NoError(t, err)
			assert.Equal(t, tc.plaintext, decrypted)
		})
	}
}

func TestEncrypt_OverCapacity(t *testing.T) {
	pubPEM, _ := generateKeyPEMs(t, 2048)
	pub, err := ParsePublicKey(pubPEM)
	require.NoError(t, err)

	tooBig := make([]byte, MaxPlaintextSize(pub)+1)
	_, err = Encrypt(pub, tooBig)
	assert.ErrorIs(t, err, ErrEncrypt)
}

func TestDecrypt_UniformFailure(t *testing.T) {
	pubPEM, privPEM := generateKeyPEMs(t, 2048)
	pub, err := ParsePublicKey(pubPEM)
	require.NoError(t, err)
	priv, err := ParsePrivateKey(privPEM)
	require.NoError(t, err)

	ciphertext, err := Encrypt(pub, []byte(`{"resultCode":0}`))
	require.NoError(t, err)

	t.Run("bit flips across the ciphertext fail identically", func(t *testing.T) {
		for i := 0; i < len(ciphertext); i += 17 {
			tampered := make([]byte, len(ciphertext))
			copy(tampered, ciphertext)
			tampered[i] ^= 0x01

			_, err := Decrypt(priv, tampered)
			require.Error(t, err)
			assert.Equal(t, ErrDecrypt, err, "tampered byte %d must yield the uniform decrypt error", i)
		}
	})

	t.Run("truncated ciphertext fails identically", func(t *testing.T) {
		_, err := Decrypt(priv, ciphertext[:len(ciphertext)-1])
		assert.Equal(t, ErrDecrypt, err)
	})

	t.Run("wrong key fails identically", func(t *testing.T) {
		otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)
		_, err = Decrypt(otherKey, ciphertext)
		assert.Equal(t, ErrDecrypt, err)
	})
}
