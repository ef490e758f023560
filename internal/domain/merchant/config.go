package merchant

import "fmt"

// Config is the immutable per-merchant gateway configuration assembled once
// per request from the setting store. Components receive it by value and
// never reach into any global lookup.
type Config struct {
	Mode          Mode
	MerchantID    string
	ClientID      string
	MerchantName  string
	SecretKey     string
	RSAPublicKey  string
	RSAPrivateKey string
	CallbackKey   string
}

// ValidateForCheckout checks the fields the outbound token path needs.
func (c Config) ValidateForCheckout() error {
	if c.MerchantID == "" {
		return fmt.Errorf("merchant id is not configured")
	}
	if c.ClientID == "" {
		return fmt.Errorf("client id is not configured")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("secret key is not configured")
	}
	if c.RSAPublicKey == "" {
		return fmt.Errorf("RSA public key is not configured")
	}
	return nil
}

// ValidateForCallback checks the fields the inbound callback path needs.
func (c Config) ValidateForCallback() error {
	if c.RSAPrivateKey == "" {
		return fmt.Errorf("RSA private key is not configured")
	}
	if c.CallbackKey == "" {
		return fmt.Errorf("callback key is not configured")
	}
	return nil
}
