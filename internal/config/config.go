package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	JWTSecret   string
	Backend     BackendConfig
	Gateway     GatewayConfig
	Store       StoreConfig
}

// BackendConfig points at the remote commerce backend the storefront glues to.
type BackendConfig struct {
	BaseURL string // e.g. https://api.cuztory.in/api/v1
	Timeout time.Duration
}

// GatewayConfig configures the hosted payment gateway.
type GatewayConfig struct {
	ServerKey   string
	Environment string // "sandbox" or "production"
}

// StoreConfig configures the session-state store. An empty path keeps
// everything in memory.
type StoreConfig struct {
	Path string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("BACKEND_TIMEOUT_SECONDS", 30)
	viper.SetDefault("GATEWAY_ENVIRONMENT", "sandbox")

	viper.AutomaticEnv()

	// .env is optional; env vars alone are fine.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        viper.GetString("PORT"),
		Environment: viper.GetString("ENVIRONMENT"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
		JWTSecret:   viper.GetString("JWT_SECRET"),
		Backend: BackendConfig{
			BaseURL: strings.TrimSuffix(strings.TrimSpace(viper.GetString("BACKEND_BASE_URL")), "/"),
			Timeout: time.Duration(viper.GetInt("BACKEND_TIMEOUT_SECONDS")) * time.Second,
		},
		Gateway: GatewayConfig{
			ServerKey:   strings.TrimSpace(viper.GetString("GATEWAY_SERVER_KEY")),
			Environment: viper.GetString("GATEWAY_ENVIRONMENT"),
		},
		Store: StoreConfig{
			Path: viper.GetString("STORE_PATH"),
		},
	}

	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("BACKEND_BASE_URL is required")
	}

	return cfg, nil
}
