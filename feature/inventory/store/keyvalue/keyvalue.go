// Package keyvalue stores inventory records in Redis: one hash per record plus
// a set indexing every live key.
package keyvalue

import (
	"context"
	"fmt"
	"strconv"

	"garment-stock/core/reconcile"
	"garment-stock/core/utils"

	"github.com/redis/go-redis/v9"
)

const (
	itemKeyPrefix = "item:"
	indexKey      = "keys"
)

// Only touch qty when the hash exists so a stale update cannot resurrect a
// deleted record as a partial hash.
var updateQuantityScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return 0
end
redis.call('HSET', KEYS[1], 'qty', ARGV[1])
return 1
`)

// Store implements reconcile.Store over a Redis client.
type Store struct {
	client redis.UniversalClient
	prefix string
}

// New creates a store. Every Redis key written is prefixed with prefix.
func New(client redis.UniversalClient, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

func (s *Store) itemKey(key string) string {
	return s.prefix + itemKeyPrefix + key
}

func (s *Store) indexKey() string {
	return s.prefix + indexKey
}

func (s *Store) GetAll(ctx context.Context) ([]reconcile.Record, error) {
	keys, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	if len(keys) == 0 {
		return []reconcile.Record{}, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(keys))
	_, err = s.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		for i, k := range keys {
			cmds[i] = p.HGetAll(ctx, s.itemKey(k))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	out := make([]reconcile.Record, 0, len(keys))
	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			// Index entry without a hash; skip rather than fail the listing.
			continue
		}
		out = append(out, decode(keys[i], fields))
	}
	return out, nil
}

func (s *Store) GetByKey(ctx context.Context, key string) (*reconcile.Record, error) {
	fields, err := s.client.HGetAll(ctx, s.itemKey(key)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get %q: %w", key, err)
	}
	if len(fields) == 0 {
		return nil, nil
	}
	rec := decode(key, fields)
	return &rec, nil
}

func (s *Store) Upsert(ctx context.Context, rec reconcile.Record) error {
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, s.itemKey(rec.Key), encode(rec))
		p.SAdd(ctx, s.indexKey(), rec.Key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to upsert %q: %w", rec.Key, err)
	}
	return nil
}

func (s *Store) UpdateQuantity(ctx context.Context, key string, qty int) error {
	ok, err := updateQuantityScript.Run(ctx, s.client, []string{s.itemKey(key)}, qty).Int()
	if err != nil {
		return fmt.Errorf("failed to update %q: %w", key, err)
	}
	if ok == 0 {
		return fmt.Errorf("record %q does not exist", key)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.DeleteBatch(ctx, []string{key})
}

// DeleteBatch removes hashes and index entries in one transaction.
func (s *Store) DeleteBatch(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	hashes := make([]string, len(keys))
	members := make([]interface{}, len(keys))
	for i, k := range keys {
		hashes[i] = s.itemKey(k)
		members[i] = k
	}

	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, hashes...)
		p.SRem(ctx, s.indexKey(), members...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete %d keys: %w", len(keys), err)
	}
	return nil
}

func encode(rec reconcile.Record) map[string]interface{} {
	return map[string]interface{}{
		"type":     rec.Type,
		"code":     rec.Code,
		"color":    rec.Color,
		"size":     rec.Size,
		"fabric":   rec.Fabric,
		"qty":      strconv.Itoa(rec.Qty),
		"notes":    rec.Notes,
		"added_at": utils.FormatTime(rec.AddedAt),
	}
}

func decode(key string, fields map[string]string) reconcile.Record {
	return reconcile.Record{
		Key:     key,
		Type:    fields["type"],
		Code:    fields["code"],
		Color:   fields["color"],
		Size:    fields["size"],
		Fabric:  fields["fabric"],
		Qty:     utils.ToInt(fields["qty"]),
		Notes:   fields["notes"],
		AddedAt: utils.ParseTime(fields["added_at"]),
	}
}
