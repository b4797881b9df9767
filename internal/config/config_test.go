package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "HTTP_PORT", "LOG_LEVEL", "STORE_DRIVER", "DATABASE_URL",
		"POSTGRESQL_HOST", "POSTGRESQL_PORT", "POSTGRESQL_USER", "POSTGRESQL_PASSWORD",
		"POSTGRESQL_DBNAME", "DB_NAME", "CORS_ORIGINS", "OTP_TTL", "OTP_RATE_LIMIT",
		"OTP_RATE_PERIOD", "WHATSAPP_FALLBACK_URL", "TRUSTED_PROXIES",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, StoreDriverPostgres, cfg.StoreDriver)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "https://socialripple.com", cfg.WhatsAppFallbackURL)
	assert.Equal(t, time.Minute, cfg.OTPRatePeriod)
	assert.Nil(t, cfg.TrustedProxies)
	assert.Equal(t, 10*time.Minute, cfg.OTPTTL)
	assert.Equal(t, int64(5), cfg.OTPRateLimit)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:3001"}, cfg.AllowedOrigins)
}

func TestLoad_CORSOriginsTrimmed(t *testing.T) {
	clearEnv(t)
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoad_ProductionRequiresCORS(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")

	_, err := Load()
	assert.ErrorContains(t, err, "CORS_ORIGINS")
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string][2]string{
		"bad ttl":    {"OTP_TTL", "ten minutes"},
		"bad limit":  {"OTP_RATE_LIMIT", "five"},
		"bad period": {"OTP_RATE_PERIOD", "-1m"},
		"bad driver": {"STORE_DRIVER", "mongo"},
		"bad proxy":  {"TRUSTED_PROXIES", "10.0.0.1, load-balancer"},
	}

	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])

			_, err := Load()
			assert.ErrorContains(t, err, kv[0])
		})
	}
}

func TestGetDatabaseURL_FromParts(t *testing.T) {
	clearEnv(t)
	t.Setenv("POSTGRESQL_HOST", "db")
	t.Setenv("POSTGRESQL_PORT", "5433")
	t.Setenv("POSTGRESQL_USER", "app")
	t.Setenv("POSTGRESQL_PASSWORD", "p@ss")
	t.Setenv("DB_NAME", "ripple")

	assert.Equal(t, "postgres://app:p%40ss@db:5433/ripple?sslmode=disable", getDatabaseURL())
}

func TestLoad_TrustedProxies(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 172.16.0.0/12,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.1", "172.16.0.0/12"}, cfg.TrustedProxies)
}
