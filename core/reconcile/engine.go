package reconcile

import (
	"context"
	"math"
	"time"

	"garment-stock/core/validator"

	"go.uber.org/zap"
)

// Engine applies add/remove requests against a Store while keeping the
// inventory invariants: one record per key, positive quantities only and an
// immutable AddedAt.
type Engine struct {
	store  Store
	locks  *keyLocker
	cache  *snapshotCache
	logger *zap.Logger
	now    func() time.Time
}

// NewEngine creates an engine over store. A cacheTTL of zero disables the List
// snapshot cache.
func NewEngine(store Store, logger *zap.Logger, cacheTTL time.Duration) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		store:  store,
		locks:  newKeyLocker(),
		cache:  newSnapshotCache(cacheTTL),
		logger: logger,
		now:    time.Now,
	}
}

// MergeAndAdd adds item.Qty units to the record identified by the item's key,
// creating the record if needed. It returns the stored record.
func (e *Engine) MergeAndAdd(ctx context.Context, item Item) (*Record, error) {
	item = Normalize(item)
	if err := validationFrom(validator.ValidateStruct(&item)); err != nil {
		return nil, err
	}

	key := MakeKey(item)
	unlock := e.locks.Lock(key)
	defer unlock()

	existing, err := e.store.GetByKey(ctx, key)
	if err != nil {
		return nil, storeErr("get", err)
	}

	rec := Record{
		Key:     key,
		Type:    item.Type,
		Code:    item.Code,
		Color:   item.Color,
		Size:    item.Size,
		Fabric:  item.Fabric,
		Qty:     item.Qty,
		Notes:   item.Notes,
		AddedAt: e.now().UTC(),
	}
	if existing != nil {
		qty, err := addQty(existing.Qty, item.Qty)
		if err != nil {
			return nil, err
		}
		rec.Qty = qty
		if !existing.AddedAt.IsZero() {
			rec.AddedAt = existing.AddedAt
		}
		if rec.Notes == "" {
			rec.Notes = existing.Notes
		}
	}

	if err := e.store.Upsert(ctx, rec); err != nil {
		return nil, storeErr("upsert", err)
	}
	e.cache.Invalidate()

	e.logger.Debug("Merged item into inventory",
		zap.String("key", key),
		zap.Int("added", item.Qty),
		zap.Int("qty", rec.Qty),
		zap.Bool("created", existing == nil),
	)
	return &rec, nil
}

// Subtract removes item.Qty units from the matching record. When the quantity
// reaches zero the record is deleted and a nil record is returned.
func (e *Engine) Subtract(ctx context.Context, item Item) (*Record, error) {
	item = Normalize(item)
	if err := validationFrom(validator.ValidateStruct(&item)); err != nil {
		return nil, err
	}

	key := MakeKey(item)
	unlock := e.locks.Lock(key)
	defer unlock()

	return e.subtractLocked(ctx, key, item.Qty)
}

// Increment adds n units to an existing record addressed by key.
func (e *Engine) Increment(ctx context.Context, key string, n int) (*Record, error) {
	if n <= 0 {
		return nil, &ValidationError{Field: "qty", Reason: "must be greater than 0"}
	}

	unlock := e.locks.Lock(key)
	defer unlock()

	existing, err := e.store.GetByKey(ctx, key)
	if err != nil {
		return nil, storeErr("get", err)
	}
	if existing == nil {
		return nil, &NotFoundError{Key: key}
	}

	qty, err := addQty(existing.Qty, n)
	if err != nil {
		return nil, err
	}
	if err := e.store.UpdateQuantity(ctx, key, qty); err != nil {
		return nil, storeErr("update", err)
	}
	e.cache.Invalidate()

	rec := *existing
	rec.Qty = qty
	return &rec, nil
}

// Decrement removes n units from an existing record addressed by key, with the
// same rules as Subtract.
func (e *Engine) Decrement(ctx context.Context, key string, n int) (*Record, error) {
	if n <= 0 {
		return nil, &ValidationError{Field: "qty", Reason: "must be greater than 0"}
	}

	unlock := e.locks.Lock(key)
	defer unlock()

	return e.subtractLocked(ctx, key, n)
}

// Remove deletes one record regardless of its quantity.
func (e *Engine) Remove(ctx context.Context, key string) error {
	unlock := e.locks.Lock(key)
	defer unlock()

	existing, err := e.store.GetByKey(ctx, key)
	if err != nil {
		return storeErr("get", err)
	}
	if existing == nil {
		return &NotFoundError{Key: key}
	}
	if err := e.store.Delete(ctx, key); err != nil {
		return storeErr("delete", err)
	}
	e.cache.Invalidate()

	e.logger.Debug("Removed record", zap.String("key", key), zap.Int("qty", existing.Qty))
	return nil
}

// ClearAll deletes every record currently in the store and returns how many
// were removed. Calling it on an empty store is a no-op.
func (e *Engine) ClearAll(ctx context.Context) (int, error) {
	records, err := e.store.GetAll(ctx)
	if err != nil {
		return 0, storeErr("list", err)
	}
	if len(records) == 0 {
		return 0, nil
	}

	keys := make([]string, 0, len(records))
	for _, r := range records {
		keys = append(keys, r.Key)
	}

	unlock := e.locks.LockAll(keys)
	defer unlock()
	defer e.cache.Invalidate()

	if batch, ok := e.store.(BatchDeleter); ok {
		if err := batch.DeleteBatch(ctx, keys); err != nil {
			return 0, storeErr("delete", err)
		}
	} else {
		for i, key := range keys {
			if err := e.store.Delete(ctx, key); err != nil {
				return i, storeErr("delete", err)
			}
		}
	}

	e.logger.Info("Cleared inventory", zap.Int("count", len(keys)))
	return len(keys), nil
}

// List returns every stored record.
func (e *Engine) List(ctx context.Context) ([]Record, error) {
	records, err := e.cache.GetOrLoad(ctx, e.store.GetAll)
	if err != nil {
		return nil, storeErr("list", err)
	}
	return records, nil
}

// Get returns the record stored under key.
func (e *Engine) Get(ctx context.Context, key string) (*Record, error) {
	rec, err := e.store.GetByKey(ctx, key)
	if err != nil {
		return nil, storeErr("get", err)
	}
	if rec == nil {
		return nil, &NotFoundError{Key: key}
	}
	return rec, nil
}

// subtractLocked must be called with the lock for key held.
func (e *Engine) subtractLocked(ctx context.Context, key string, qty int) (*Record, error) {
	existing, err := e.store.GetByKey(ctx, key)
	if err != nil {
		return nil, storeErr("get", err)
	}
	if existing == nil {
		return nil, &NotFoundError{Key: key}
	}
	if qty > existing.Qty {
		return nil, &InsufficientQuantityError{Key: key, Available: existing.Qty, Requested: qty}
	}

	left := existing.Qty - qty
	if left == 0 {
		if err := e.store.Delete(ctx, key); err != nil {
			return nil, storeErr("delete", err)
		}
		e.cache.Invalidate()
		e.logger.Debug("Subtracted last units, record deleted", zap.String("key", key), zap.Int("removed", qty))
		return nil, nil
	}

	if err := e.store.UpdateQuantity(ctx, key, left); err != nil {
		return nil, storeErr("update", err)
	}
	e.cache.Invalidate()

	rec := *existing
	rec.Qty = left
	e.logger.Debug("Subtracted from inventory", zap.String("key", key), zap.Int("removed", qty), zap.Int("qty", left))
	return &rec, nil
}

// addQty returns have+n, rejecting sums that do not fit in an int.
func addQty(have, n int) (int, error) {
	if have > 0 && n > math.MaxInt-have {
		return 0, &ValidationError{Field: "qty", Reason: "exceeds the maximum quantity"}
	}
	return have + n, nil
}
