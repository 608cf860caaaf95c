package store

import (
	"context"
	"testing"
	"time"

	"garment-stock/core/database"
	"garment-stock/core/redisdb"
	"garment-stock/feature/inventory/store/memory"
	"garment-stock/feature/inventory/store/relational"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Memory(t *testing.T) {
	opened, err := Open(context.Background(), Config{Backend: BackendMemory}, Connections{}, nil)
	require.NoError(t, err)
	assert.IsType(t, &memory.Store{}, opened.Store)
	assert.Nil(t, opened.Schema)
	assert.NoError(t, opened.Close())
}

func TestOpen_SQLite(t *testing.T) {
	conns := Connections{Database: database.Config{Driver: database.DriverSQLite, Name: ":memory:"}}
	opened, err := Open(context.Background(), Config{Backend: BackendSQL}, conns, nil)
	require.NoError(t, err)
	defer opened.Close()

	assert.IsType(t, &relational.Store{}, opened.Store)
	require.NotNil(t, opened.Schema)
	missing, err := opened.Schema.MissingColumns(context.Background())
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open(context.Background(), Config{Backend: "etcd"}, Connections{}, nil)
	assert.ErrorContains(t, err, "unknown store backend")

	conns := Connections{Redis: redisdb.Config{Addr: "localhost:1", TimeoutSeconds: 1}}
	_, err = Open(context.Background(), Config{Backend: BackendRedis}, conns, nil)
	assert.Error(t, err)
}

func TestConfig_CacheTTL(t *testing.T) {
	assert.Equal(t, time.Duration(0), Config{}.CacheTTL())
	assert.Equal(t, 30*time.Second, Config{CacheTTLSeconds: 30}.CacheTTL())
}
