package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "APP_ENV", "ALLOWED_ORIGINS", "LOG_LEVEL", "MAX_BRIEF_BYTES",
		"PRESETS_PATH", "READ_TIMEOUT", "WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8005", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, int64(65536), cfg.MaxBriefBytes)
	assert.Empty(t, cfg.PresetsPath)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("APP_ENV", "production")
	t.Setenv("ALLOWED_ORIGINS", " https://a.pl, ,https://b.pl ")
	t.Setenv("MAX_BRIEF_BYTES", "1024")
	t.Setenv("WRITE_TIMEOUT", "250ms")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"https://a.pl", "https://b.pl"}, cfg.AllowedOrigins)
	assert.Equal(t, int64(1024), cfg.MaxBriefBytes)
	assert.Equal(t, 250*time.Millisecond, cfg.WriteTimeout)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("MAX_BRIEF_BYTES", "lots")
	t.Setenv("READ_TIMEOUT", "10")
	t.Setenv("ALLOWED_ORIGINS", " , ")

	cfg := Load()
	assert.Equal(t, int64(64<<10), cfg.MaxBriefBytes)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}
