package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.Server.StripTraceHeaders)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, 300, cfg.Redis.CacheTTLSeconds)
	assert.Equal(t, "header", cfg.Auth.Scheme)
	assert.Equal(t, "Authorization", cfg.Auth.Name)
	assert.Equal(t, "authorizer:", cfg.Auth.KeyPrefix)
	assert.Equal(t, 10, cfg.Auth.TimeoutSeconds)
	assert.False(t, cfg.Auth.Enabled())
	assert.False(t, cfg.Database.Enabled())
	assert.Equal(t, "uploads", cfg.Storage.Bucket)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("AUTH_URL", "http://authority.local/check")
	t.Setenv("AUTH_SCHEME", "query")
	t.Setenv("AUTH_NAME", "token")
	t.Setenv("SERVER_PATH_PREFIX", "/api")
	t.Setenv("REDIS_POOL_SIZE", "4")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "http://authority.local/check", cfg.Auth.URL)
	assert.Equal(t, "query", cfg.Auth.Scheme)
	assert.Equal(t, "token", cfg.Auth.Name)
	assert.Equal(t, "/api", cfg.Server.PathPrefix)
	assert.Equal(t, 4, cfg.Redis.PoolSize)
	assert.True(t, cfg.Auth.Enabled())
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	content := "DATABASE_DRIVER=sqlite\nDATABASE_NAME=:memory:\nPUBSUB_CHANNEL_PREFIX=events.\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("DATABASE_DRIVER")
		os.Unsetenv("DATABASE_NAME")
		os.Unsetenv("PUBSUB_CHANNEL_PREFIX")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, ":memory:", cfg.Database.Name)
	assert.Equal(t, "events.", cfg.PubSub.ChannelPrefix)
}
