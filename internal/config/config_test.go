package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "https://api.example.com/api/v1/")
	t.Setenv("GATEWAY_SERVER_KEY", " sk-123 ")
	t.Setenv("JWT_SECRET", "topsecret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "https://api.example.com/api/v1", cfg.Backend.BaseURL, "trailing slash stripped")
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "sk-123", cfg.Gateway.ServerKey, "key is trimmed")
	assert.Equal(t, "sandbox", cfg.Gateway.Environment)
	assert.Equal(t, "topsecret", cfg.JWTSecret)
}

func TestLoadRequiresBackendURL(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "")
	_, err := Load()
	assert.Error(t, err)
}
