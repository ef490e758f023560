// Package config loads the application configuration from file and env.
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "paygate/internal/shared/config"
)

type Config struct {
	Server            sharedConfig.ServerConfig            `mapstructure:"server"`
	Database          sharedConfig.DatabaseConfig          `mapstructure:"database"`
	Logger            sharedConfig.LoggerConfig            `mapstructure:"logger"`
	Redis             sharedConfig.RedisConfig             `mapstructure:"redis"`
	Checkout          sharedConfig.CheckoutConfig          `mapstructure:"checkout"`
	CallbackRateLimit sharedConfig.CallbackRateLimitConfig `mapstructure:"callback_rate_limit"`
	Admin             sharedConfig.AdminConfig             `mapstructure:"admin"`
	Email             sharedConfig.EmailConfig             `mapstructure:"email"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("PAYGATE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Environment-specific overrides (config.production.yaml) are optional.
	if env != "" && env != "default" {
		viper.SetConfigName("config." + env)
		if err := viper.MergeInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read %s config file: %w", env, err)
			}
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.base_url", "http://localhost:8080")

	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "paygate_dev")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)

	// Demo gateway unless the operator explicitly goes live.
	viper.SetDefault("checkout.mode", "demo")
	viper.SetDefault("checkout.storefront_base_url", "http://localhost:3000")

	viper.SetDefault("callback_rate_limit.requests_per_minute", 60)
	viper.SetDefault("callback_rate_limit.requests_per_hour", 600)

	viper.SetDefault("admin.username", "admin")
	viper.SetDefault("admin.token_exp_minutes", 30)

	viper.SetDefault("email.enabled", false)
	viper.SetDefault("email.smtp_port", 587)
}
