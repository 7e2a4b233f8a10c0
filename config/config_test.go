package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigAppliesDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "vnexus.db", cfg.Storage.Path)
	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenDuration)
	assert.Equal(t, 168*time.Hour, cfg.Auth.RefreshTokenDuration)
	assert.Equal(t, 2*time.Second, cfg.Messaging.ReplyDelay)
	assert.Equal(t, 2, cfg.Messaging.ReplyWorkers)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoadConfigReadsOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("STORAGE_PATH", "/tmp/other.db")
	t.Setenv("JWT_ACCESS_TOKEN_DURATION", "30m")
	t.Setenv("REPLY_DELAY", "500ms")
	t.Setenv("REPLY_WORKERS", "4")
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/other.db", cfg.Storage.Path)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenDuration)
	assert.Equal(t, 500*time.Millisecond, cfg.Messaging.ReplyDelay)
	assert.Equal(t, 4, cfg.Messaging.ReplyWorkers)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadConfigCollectsAllErrors(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ACCESS_TOKEN_DURATION", "not-a-duration")
	t.Setenv("REPLY_WORKERS", "zero")

	_, err := LoadConfig()
	require.Error(t, err)
	// Both problems are reported at once, not one per restart.
	assert.Contains(t, err.Error(), "JWT_ACCESS_TOKEN_DURATION")
	assert.Contains(t, err.Error(), "REPLY_WORKERS")
}
