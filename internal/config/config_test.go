package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "momentum_db", cfg.DBName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "*", cfg.CORSOrigins)
	assert.Equal(t, 15*time.Minute, cfg.JWTAccessExpiry)
	assert.Equal(t, 168*time.Hour, cfg.JWTRefreshExpiry)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_ACCESS_EXPIRY", "30m")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, 30*time.Minute, cfg.JWTAccessExpiry)
}

func TestParseDurationFallback(t *testing.T) {
	assert.Equal(t, 15*time.Minute, parseDuration("not-a-duration"))
	assert.Equal(t, time.Hour, parseDuration("1h"))
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "postgres",
		DBPassword: "secret",
		DBName:     "momentum_db",
		DBSSLMode:  "disable",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "dbname=momentum_db")
	assert.Contains(t, dsn, "TimeZone=UTC")
}
