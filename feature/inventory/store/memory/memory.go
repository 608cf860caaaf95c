// Package memory is a process-local inventory store, used for development and
// as the default backend when no database is configured.
package memory

import (
	"context"
	"fmt"
	"sync"

	"garment-stock/core/reconcile"
)

// Store keeps records in a map guarded by a RWMutex.
type Store struct {
	mu      sync.RWMutex
	records map[string]reconcile.Record
}

// New creates an empty store.
func New() *Store {
	return &Store{records: make(map[string]reconcile.Record)}
}

func (s *Store) GetAll(ctx context.Context) ([]reconcile.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]reconcile.Record, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r)
	}
	return out, nil
}

func (s *Store) GetByKey(ctx context.Context, key string) (*reconcile.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[key]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (s *Store) Upsert(ctx context.Context, rec reconcile.Record) error {
	if rec.Key == "" {
		return fmt.Errorf("record has no key")
	}
	s.mu.Lock()
	s.records[rec.Key] = rec
	s.mu.Unlock()
	return nil
}

func (s *Store) UpdateQuantity(ctx context.Context, key string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[key]
	if !ok {
		return fmt.Errorf("record %q does not exist", key)
	}
	r.Qty = qty
	s.records[key] = r
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.records, key)
	s.mu.Unlock()
	return nil
}

// DeleteBatch removes every key under one lock.
func (s *Store) DeleteBatch(ctx context.Context, keys []string) error {
	s.mu.Lock()
	for _, k := range keys {
		delete(s.records, k)
	}
	s.mu.Unlock()
	return nil
}
