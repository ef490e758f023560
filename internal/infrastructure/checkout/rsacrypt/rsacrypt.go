// Package rsacrypt implements the asymmetric layer of the checkout token
// protocol: RSA-OAEP with SHA-256 for both the hash and the mask generation
// function, which is what the MMG gateway requires on both directions.
package rsacrypt

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
)

var (
	// ErrKeyLoad is returned when a PEM key cannot be parsed.
	ErrKeyLoad = errors.New("failed to load RSA key")
	// ErrEncrypt is returned when encryption fails, including plaintexts
	// exceeding the OAEP capacity of the key.
	ErrEncrypt = errors.New("failed to encrypt data")
	// ErrDecrypt is returned for any decryption failure. It deliberately
	// carries no detail about why the ciphertext was rejected.
	ErrDecrypt = errors.New("failed to decrypt data")
)

const oaepHashSize = sha256.Size

// ParsePublicKey parses a PEM-encoded RSA public key in PKIX or PKCS#1 form.
func ParsePublicKey(pemData string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(pemData))
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found in public key", ErrKeyLoad)
	}

	if pub, err := x509.ParsePKIXPublicKey(block.Bytes); err == nil {
		rsaPub, ok := pub.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: public key is not RSA", ErrKeyLoad)
		}
		return rsaPub, nil
	}

	rsaPub, err := x509.ParsePKCS1PublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyLoad, err)
	}
	return rsaPub, nil
}

// ParsePrivateKey parses a PEM-encoded RSA private key in PKCS#8 or PKCS#1 form.
func ParsePrivateKey(pemData string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(pemData))
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found in private key", ErrKeyLoad)
	}

	if key, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: private key is not RSA", ErrKeyLoad)
		}
		return rsaKey, nil
	}

	rsaKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyLoad, err)
	}
	return rsaKey, nil
}

// MaxPlaintextSize returns the OAEP-SHA256 capacity of the key in bytes.
func MaxPlaintextSize(pub *rsa.PublicKey) int {
	return pub.Size() - 2*oaepHashSize - 2
}

// Encrypt encrypts plaintext with RSA-OAEP-SHA256. The plaintext is the raw
// UTF-8 byte sequence of the canonical JSON payload; no charset transcoding
// happens before encryption.
func Encrypt(pub *rsa.PublicKey, plaintext []byte) ([]byte, error) {
	if len(plaintext) > MaxPlaintextSize(pub) {
		return nil, fmt.Errorf("%w: plaintext length %d exceeds OAEP capacity %d for %d-bit key",
			ErrEncrypt, len(plaintext), MaxPlaintextSize(pub), pub.N.BitLen())
	}

	ciphertext, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, plaintext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncrypt, err)
	}
	return ciphertext, nil
}

// Decrypt decrypts ciphertext with RSA-OAEP-SHA256. Every failure mode maps
// to the same ErrDecrypt so callers cannot be used as a padding oracle.
func Decrypt(priv *rsa.PrivateKey, ciphertext []byte) ([]byte, error) {
	plaintext, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, priv, ciphertext, nil)
	if err != nil {
		return nil, ErrDecrypt
	}
	return plaintext, nil
}
