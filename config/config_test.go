package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadWithDefaults(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/auth")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres://localhost/auth", cfg.DBURL)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "GreenLedger", cfg.TotpIssuer)
}

func TestLoadWithOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_URL", "postgres://db/auth")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("TOTP_ISSUER", "Acme")

	cfg := Load()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://db/auth", cfg.DBURL)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, "prod-secret", cfg.JWTSecret)
	assert.Equal(t, "Acme", cfg.TotpIssuer)
}
