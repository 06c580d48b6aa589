package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 1, cfg.JWTTTL)
	assert.Equal(t, 10.0, cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/schedly_test")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("JWT_TTL_HOURS", "2")
	t.Setenv("RATE_LIMIT_AUTH_RPS", "1.5")

	cfg := Load()

	assert.Equal(t, "postgres://localhost/schedly_test", cfg.DatabaseURL)
	assert.Equal(t, "super-secret", cfg.JWTSecret)
	assert.Equal(t, 2, cfg.JWTTTL)
	assert.Equal(t, 1.5, cfg.RateLimitAuthRPS)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("JWT_TTL_HOURS", "not-a-number")

	cfg := Load()

	assert.Equal(t, 1, cfg.JWTTTL)
}
