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
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "memory", cfg.Store.Backend)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "inventory", cfg.Mongo.Collection)
	assert.Equal(t, 480, cfg.Auth.TokenTTLMinutes)
	assert.False(t, cfg.Storage.UseSSL)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "sql")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_PORT", "5432")
	t.Setenv("SERVER_CLEAR_PIN", "1234")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "sql", cfg.Store.Backend)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.True(t, cfg.Server.PinMatches("1234"))

	conns := cfg.Connections()
	assert.Equal(t, "postgres", conns.Database.Driver)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("REDIS_PREFIX=shop:\nSTORE_CACHE_TTL_SECONDS=15\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("REDIS_PREFIX")
		os.Unsetenv("STORE_CACHE_TTL_SECONDS")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "shop:", cfg.Redis.Prefix)
	assert.Equal(t, 15, cfg.Store.CacheTTLSeconds)
}
