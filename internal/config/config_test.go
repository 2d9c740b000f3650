package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	// Pin the variables under test so an ambient environment cannot
	// leak into the defaults.
	for _, key := range []string{"APP_PORT", "APP_ENV", "ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "5000", cfg.AppPort)
	assert.Equal(t, []string{
		"https://virtual-quran-academy.vercel.app",
		"http://localhost:4200",
	}, cfg.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_DSN", "postgres://localhost/auth")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg := Load()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "postgres://localhost/auth", cfg.DatabaseDSN)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}
