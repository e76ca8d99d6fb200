package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_USER", "edu")
	t.Setenv("DB_PASS", "")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "edusynth")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL_MIN", "60")
	t.Setenv("BCRYPT_COST", "10")
}

func TestLoad_ReadsRequiredAndOptional(t *testing.T) {
	setRequired(t)
	t.Setenv("COOKIE_SECURE", "yes")

	cfg := Load()
	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "", cfg.DBPass)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 60, cfg.TokenTTLMin)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.True(t, cfg.CookieSecure)
}

func TestLoadRateLimitConfig_DefaultsAndOverrides(t *testing.T) {
	def := LoadRateLimitConfig()
	assert.True(t, def.Enabled)
	assert.Equal(t, 10, def.Capacity)
	assert.Equal(t, "ip_route", def.KeyStrategy)

	t.Setenv("RATE_LIMIT_BURST", "3")
	t.Setenv("RATE_LIMIT_REFILL_EVERY", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")
	got := LoadRateLimitConfig()
	assert.Equal(t, 3, got.Capacity)
	assert.Equal(t, 1, got.RefillTokens)
	assert.Equal(t, 2*time.Second, got.RefillInterval)
	assert.Equal(t, 10*time.Second, got.TTL, "ttl is raised to five refill intervals")
}

func TestLoadCacheConfig_ParsesMethods(t *testing.T) {
	t.Setenv("CACHE_METHODS", " get, head ,")
	t.Setenv("CACHE_ENABLED", "off")
	cfg := LoadCacheConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, map[string]bool{"GET": true, "HEAD": true}, cfg.Methods)
}

func TestLoadRedisConfig_HostPortWins(t *testing.T) {
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_TLS", "1")
	rc := LoadRedisConfig()
	require.Equal(t, "redis:6380", rc.Addr)
	assert.Equal(t, 2, rc.DB)
	assert.True(t, rc.TLS)
}

func TestLoadAuditConfig_FallsBackToAMQPURL(t *testing.T) {
	t.Setenv("RABBITMQ_URL", "")
	t.Setenv("AMQP_URL", "amqp://u:p@mq:5672/")
	cfg := LoadAuditConfig()
	assert.Equal(t, "amqp://u:p@mq:5672/", cfg.URL)
	assert.False(t, cfg.ConsumerEnabled)
	assert.Equal(t, "logs", cfg.LogDir)
}

func TestLoadAuditConfig_Toggle(t *testing.T) {
	t.Setenv("AUDIT_ENABLED", "")
	assert.True(t, LoadAuditConfig().Enabled)
	t.Setenv("AUDIT_ENABLED", "false")
	assert.False(t, LoadAuditConfig().Enabled)
}
