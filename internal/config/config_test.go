package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		// t.Setenv restores the variables after the test.
		t.Setenv("APP_ENV", "production")
		t.Setenv("APP_PORT", "8080")
		t.Setenv("SERVER_URL", "https://api.rebookz.com/")
		t.Setenv("SESSION_SECRET", "s3cret")
		t.Setenv("SESSION_TTL", "2h")
		t.Setenv("SESSION_STORE", "redis")
		t.Setenv("REDIS_DB", "2")
		t.Setenv("API_TIMEOUT", "5s")
		t.Setenv("PAGE_SIZE", "25")
		t.Setenv("KEYWORD_MODE", "live")
		t.Setenv("SUPER_ADMIN_EMAIL", "Root@Rebookz.com")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.5, ,10.0.0.6")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "production", cfg.AppEnv)
		assert.True(t, cfg.IsProduction())
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "https://api.rebookz.com", cfg.ServerURL)
		assert.Equal(t, "https://api.rebookz.com/api", cfg.APIBaseURL)
		assert.Equal(t, "s3cret", cfg.SessionSecret)
		assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
		assert.Equal(t, "redis", cfg.SessionStore)
		assert.Equal(t, 2, cfg.RedisDB)
		assert.Equal(t, 5*time.Second, cfg.APITimeout)
		assert.Equal(t, 25, cfg.PageSize)
		assert.Equal(t, "live", cfg.KeywordMode)
		assert.Equal(t, "root@rebookz.com", cfg.SuperAdminEmail)
		assert.Equal(t, []string{"10.0.0.5", "10.0.0.6"}, cfg.TrustedProxies)
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		t.Setenv("SERVER_URL", "")
		t.Setenv("API_BASE_URL", "")
		t.Setenv("SESSION_SECRET", "")
		t.Setenv("SESSION_STORE", "")
		t.Setenv("PAGE_SIZE", "")
		t.Setenv("KEYWORD_MODE", "")
		t.Setenv("TRUSTED_PROXIES", "")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:5001", cfg.ServerURL)
		assert.Equal(t, "http://localhost:5001/api", cfg.APIBaseURL)
		assert.Equal(t, devSessionSecret, cfg.SessionSecret)
		assert.Equal(t, "memory", cfg.SessionStore)
		assert.Equal(t, 10, cfg.PageSize)
		assert.Equal(t, "submit", cfg.KeywordMode)
		assert.Equal(t, "rebookzapp", cfg.AppScheme)
		assert.Empty(t, cfg.TrustedProxies)
	})

	t.Run("Missing secret in production", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("SESSION_SECRET", "")

		_, err := LoadConfig()
		assert.ErrorIs(t, err, ErrMissingSecret)
	})

	t.Run("Postgres store needs a database", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		t.Setenv("SESSION_STORE", "postgres")
		t.Setenv("DATABASE_URL", "")

		_, err := LoadConfig()
		assert.ErrorIs(t, err, ErrMissingDatabase)
	})

	t.Run("Unknown store", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		t.Setenv("SESSION_STORE", "etcd")

		_, err := LoadConfig()
		assert.ErrorIs(t, err, ErrUnknownStore)
	})

	t.Run("Invalid duration", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		t.Setenv("SESSION_STORE", "memory")
		t.Setenv("API_TIMEOUT", "soon")

		_, err := LoadConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "API_TIMEOUT")
	})
}
