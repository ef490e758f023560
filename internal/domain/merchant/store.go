package merchant

import "context"

// Setting keys in the merchant setting store. They mirror the option names
// the MMG gateway integration has always used.
const (
	SettingMode          = "mmg_mode"
	SettingMerchantID    = "mmg_merchant_id"
	SettingClientID      = "mmg_client_id"
	SettingMerchantName  = "mmg_merchant_name"
	SettingSecretKey     = "mmg_secret_key"
	SettingRSAPublicKey  = "mmg_rsa_public_key"
	SettingRSAPrivateKey = "mmg_rsa_private_key"
	SettingCallbackKey   = "mmg_callback_key"
)

// CallbackKeyLength is the length of the generated callback key.
const CallbackKeyLength = 32

// SettingStore persists merchant gateway settings.
//
// GetOrCreateCallbackKey has generate-once semantics: the first call
// atomically creates and persists a random key, every later call returns the
// same key. Implementations must make the create atomic so concurrent
// callers cannot observe different keys.
type SettingStore interface {
	Get(ctx context.Context, key, defaultValue string) (string, error)
	Set(ctx context.Context, key, value string) error
	GetOrCreateCallbackKey(ctx context.Context) (string, error)
}

// LoadConfig assembles the immutable Config from the setting store, falling
// back to the given defaults for unset keys.
func LoadConfig(ctx context.Context, store SettingStore, defaults Config) (Config, error) {
	cfg := defaults

	modeStr, err := store.Get(ctx, SettingMode, defaults.Mode.String())
	if err != nil {
		return Config{}, err
	}
	mode, err := NewMode(modeStr)
	if err != nil {
		return Config{}, err
	}
	cfg.Mode = mode

	fields := []struct {
		key string
		dst *string
	}{
		{SettingMerchantID, &cfg.MerchantID},
		{SettingClientID, &cfg.ClientID},
		{SettingMerchantName, &cfg.MerchantName},
		{SettingSecretKey, &cfg.SecretKey},
		{SettingRSAPublicKey, &cfg.RSAPublicKey},
		{SettingRSAPrivateKey, &cfg.RSAPrivateKey},
	}
	for _, f := range fields {
		v, err := store.Get(ctx, f.key, *f.dst)
		if err != nil {
			return Config{}, err
		}
		*f.dst = v
	}

	callbackKey, err := store.GetOrCreateCallbackKey(ctx)
	if err != nil {
		return Config{}, err
	}
	cfg.CallbackKey = callbackKey

	return cfg, nil
}
