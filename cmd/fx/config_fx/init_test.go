package config_fx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadAppConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_ENV", "LOG_LEVEL", "MAX_RESPONSE_BYTES", "MAX_REQUEST_BYTES",
		"PARSE_CACHE_TTL", "PARSE_CACHE_SIZE", "LENIENT_REPAIR", "REPAIR_BOUNDARY", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := LoadAppConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, 262144, cfg.MaxResponseBytes)
	assert.Equal(t, int64(4*262144), cfg.MaxRequestBytes)
	assert.Equal(t, 10*time.Minute, cfg.ParseCacheTTL)
	assert.Equal(t, 1000, cfg.ParseCacheSize)
	assert.True(t, cfg.LenientRepair)
	assert.Equal(t, "element,indent", cfg.RepairBoundary)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoadAppConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MAX_RESPONSE_BYTES", "1024")
	t.Setenv("PARSE_CACHE_TTL", "0s")
	t.Setenv("LENIENT_REPAIR", "false")
	t.Setenv("REPAIR_BOUNDARY", "indent")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")

	cfg := LoadAppConfig()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 1024, cfg.MaxResponseBytes)
	assert.Equal(t, time.Duration(0), cfg.ParseCacheTTL)
	assert.False(t, cfg.LenientRepair)
	assert.Equal(t, "indent", cfg.RepairBoundary)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
}

func TestLoadAppConfigInvalidValuesFallBack(t *testing.T) {
	t.Setenv("MAX_RESPONSE_BYTES", "lots")
	t.Setenv("PARSE_CACHE_TTL", "ten minutes")
	t.Setenv("LENIENT_REPAIR", "maybe")

	cfg := LoadAppConfig()

	assert.Equal(t, 262144, cfg.MaxResponseBytes)
	assert.Equal(t, 10*time.Minute, cfg.ParseCacheTTL)
	assert.True(t, cfg.LenientRepair)
}
