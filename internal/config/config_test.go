package config

import (
	"flag"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T, args ...string) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flag.CommandLine.SetOutput(io.Discard)
	oldArgs := os.Args
	os.Args = append([]string{oldArgs[0]}, args...)
	t.Cleanup(func() { os.Args = oldArgs })
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DATABASE_URI", "DATABASE_NAME", "AUTH_SECRET", "TOKEN_TTL", "BASE_URL",
		"ENABLE_HTTPS", "TLS_CERT_FILE", "TLS_KEY_FILE", "SHUTDOWN_TIMEOUT", "LOG_JSON",
	} {
		t.Setenv(k, "")
	}
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	clearEnv(t)
	resetFlagSet(t)

	cfg := NewConfig()

	assert.Equal(t, "dev-secret-key", cfg.AuthSecret)
	assert.Equal(t, "localhost:8081", cfg.BaseURL)
	assert.Equal(t, "secretkeeper.db", cfg.DatabaseDSN)
	assert.Equal(t, "secretkeeper", cfg.DatabaseName)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.EnableHTTPS)
	assert.Empty(t, cfg.TLSCertFile)
}

func TestNewConfig_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URI", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "vault")
	t.Setenv("BASE_URL", "example.com:443")
	t.Setenv("ENABLE_HTTPS", "true")
	t.Setenv("AUTH_SECRET", "top")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("LOG_JSON", "true")
	resetFlagSet(t)

	cfg := NewConfig()

	assert.Equal(t, "mongodb://localhost:27017", cfg.DatabaseDSN)
	assert.Equal(t, "vault", cfg.DatabaseName)
	assert.Equal(t, "example.com:443", cfg.BaseURL)
	assert.True(t, cfg.EnableHTTPS)
	assert.Equal(t, "cert.pem", cfg.TLSCertFile)
	assert.Equal(t, "key.pem", cfg.TLSKeyFile)
	assert.Equal(t, "top", cfg.AuthSecret)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.True(t, cfg.LogJSON)
}

func TestNewConfig_FlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("AUTH_SECRET", "from-env")
	resetFlagSet(t, "-auth-secret", "from-flag", "-a", ":9000", "-token-ttl", "5m")

	cfg := NewConfig()

	assert.Equal(t, "from-flag", cfg.AuthSecret)
	assert.Equal(t, ":9000", cfg.BaseURL)
	assert.Equal(t, 5*time.Minute, cfg.TokenTTL)
}

func TestNewConfig_InvalidBaseURLFallback(t *testing.T) {
	// Невалидный BASE_URL (со схемой) должен откатиться на localhost:8081
	clearEnv(t)
	t.Setenv("BASE_URL", "http://bad:8080")
	resetFlagSet(t)

	cfg := NewConfig()

	assert.Equal(t, "localhost:8081", cfg.BaseURL)
}
