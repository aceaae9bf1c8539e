package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "data/badger", cfg.DBPath)
		assert.Equal(t, "test-secret", cfg.JWTSecret)
		assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("SERVER_ADDR", ":9999")
		t.Setenv("TOKEN_TTL", "30m")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ":9999", cfg.Addr)
		assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
		assert.Equal(t, "debug", cfg.LogLevel)
	})
}
