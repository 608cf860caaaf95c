package memory

import (
	"context"
	"testing"
	"time"

	"garment-stock/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ reconcile.Store        = (*Store)(nil)
	_ reconcile.BatchDeleter = (*Store)(nil)
)

func TestStore_CRUD(t *testing.T) {
	ctx := context.Background()
	s := New()

	rec := reconcile.Record{Key: "k1", Type: "Shirt", Size: "M", Qty: 2, AddedAt: time.Now().UTC()}
	require.NoError(t, s.Upsert(ctx, rec))

	got, err := s.GetByKey(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, rec, *got)

	missing, err := s.GetByKey(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, s.UpdateQuantity(ctx, "k1", 9))
	got, _ = s.GetByKey(ctx, "k1")
	assert.Equal(t, 9, got.Qty)
	assert.Equal(t, "Shirt", got.Type)

	assert.Error(t, s.UpdateQuantity(ctx, "nope", 1))
	assert.Error(t, s.Upsert(ctx, reconcile.Record{}))

	require.NoError(t, s.Delete(ctx, "k1"))
	require.NoError(t, s.Delete(ctx, "k1"))
	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStore_DeleteBatch(t *testing.T) {
	ctx := context.Background()
	s := New()
	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, s.Upsert(ctx, reconcile.Record{Key: k, Qty: 1}))
	}

	require.NoError(t, s.DeleteBatch(ctx, []string{"a", "c", "zz"}))
	all, _ := s.GetAll(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "b", all[0].Key)
}

func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Upsert(ctx, reconcile.Record{Key: "k", Qty: 1}))

	got, _ := s.GetByKey(ctx, "k")
	got.Qty = 100

	again, _ := s.GetByKey(ctx, "k")
	assert.Equal(t, 1, again.Qty)
}
