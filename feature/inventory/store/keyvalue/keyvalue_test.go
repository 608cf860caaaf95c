package keyvalue

import (
	"context"
	"os"
	"testing"
	"time"

	"garment-stock/core/reconcile"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ reconcile.Store        = (*Store)(nil)
	_ reconcile.BatchDeleter = (*Store)(nil)
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

// newTestStore namespaces every test so runs never collide.
func newTestStore(t *testing.T) *Store {
	client := getRedisClient(t)
	prefix := "test:" + uuid.NewString() + ":"
	t.Cleanup(func() {
		ctx := context.Background()
		iter := client.Scan(ctx, 0, prefix+"*", 100).Iterator()
		for iter.Next(ctx) {
			client.Del(ctx, iter.Val())
		}
		client.Close()
	})
	return New(client, prefix)
}

func TestEncodeDecode(t *testing.T) {
	added := time.Date(2024, 3, 1, 10, 0, 0, 123000000, time.UTC)
	rec := reconcile.Record{Key: "k", Type: "Shirt", Code: "A", Color: "RED", Size: "M", Fabric: "WOOL", Qty: 4, Notes: "n", AddedAt: added}

	fields := map[string]string{}
	for k, v := range encode(rec) {
		fields[k] = v.(string)
	}
	assert.Equal(t, rec, decode("k", fields))
}

func TestStore_CRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec := reconcile.Record{
		Key: "Shirt\x1fAB1\x1f\x1fM\x1f", Type: "Shirt", Code: "AB1", Size: "M", Qty: 5,
		AddedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, s.Upsert(ctx, rec))

	got, err := s.GetByKey(ctx, rec.Key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec, *got)

	require.NoError(t, s.UpdateQuantity(ctx, rec.Key, 2))
	got, _ = s.GetByKey(ctx, rec.Key)
	assert.Equal(t, 2, got.Qty)

	assert.Error(t, s.UpdateQuantity(ctx, "absent", 1))
	absent, err := s.GetByKey(ctx, "absent")
	require.NoError(t, err)
	assert.Nil(t, absent)

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, s.Delete(ctx, rec.Key))
	all, err = s.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStore_WithEngine(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	engine := reconcile.NewEngine(s, nil, 0)

	_, err := engine.MergeAndAdd(ctx, reconcile.Item{Type: "Shirt", Code: "ab1", Size: "m", Qty: 5})
	require.NoError(t, err)
	rec, err := engine.MergeAndAdd(ctx, reconcile.Item{Type: "Shirt", Code: "AB1", Size: "M", Qty: 3})
	require.NoError(t, err)
	assert.Equal(t, 8, rec.Qty)

	n, err := engine.ClearAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = engine.ClearAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
