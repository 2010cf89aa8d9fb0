package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clearEnvVars(t *testing.T) {
	t.Helper()
	vars := []string{
		"APP_PORT", "DB_HOST", "DB_PORT", "DB_USER",
		"DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"PAYMENTS_TABLE", "PAYMENT_TTL", "CLEANUP_INTERVAL", "GRACEFUL_TIMEOUT",
	}
	for _, v := range vars {
		os.Unsetenv(v)
	}
}

func TestLoad_DefaultValues(t *testing.T) {
	clearEnvVars(t)

	cfg := Load()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "merchant_payments", cfg.PaymentsTable)
	assert.Equal(t, 10*time.Minute, cfg.PaymentTTL)
	assert.Equal(t, 15*time.Minute, cfg.CleanupInterval)
	assert.Equal(t, 5*time.Second, cfg.GracefulTimeout)
}

func TestLoad_ReadsEnvVars(t *testing.T) {
	clearEnvVars(t)

	t.Setenv("APP_PORT", "9090")
	t.Setenv("PAYMENTS_TABLE", "payments_test")
	t.Setenv("PAYMENT_TTL", "30m")

	cfg := Load()

	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "payments_test", cfg.PaymentsTable)
	assert.Equal(t, 30*time.Minute, cfg.PaymentTTL)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "localhost",
		DBUser:     "user",
		DBPassword: "pass",
		DBName:     "testdb",
		DBPort:     "5432",
		DBSSLMode:  "disable",
	}

	expected := "host=localhost user=user password=pass dbname=testdb port=5432 sslmode=disable"
	assert.Equal(t, expected, cfg.DSN())
}

func TestParseDuration_ValidDuration(t *testing.T) {
	assert.Equal(t, 30*time.Minute, parseDuration("30m", time.Hour))
}

func TestParseDuration_InvalidFallback(t *testing.T) {
	assert.Equal(t, 5*time.Second, parseDuration("not-a-duration", 5*time.Second))
}
