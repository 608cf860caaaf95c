package reconcile

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// snapshotCache holds the last GetAll result for List.
type snapshotCache struct {
	mu      sync.RWMutex
	records []Record
	valid   bool
	built   time.Time
	gen     uint64
	ttl     time.Duration
	sf      singleflight.Group
}

func newSnapshotCache(ttl time.Duration) *snapshotCache {
	return &snapshotCache{ttl: ttl}
}

// isFresh must be called with mu held.
func (c *snapshotCache) isFresh() bool {
	if c.ttl <= 0 || !c.valid {
		return false
	}
	return time.Since(c.built) <= c.ttl
}

// Invalidate drops the snapshot. Loads that started before the call will not
// repopulate the cache.
func (c *snapshotCache) Invalidate() {
	c.mu.Lock()
	c.gen++
	c.records = nil
	c.valid = false
	c.mu.Unlock()
}

// GetOrLoad returns a copy of the cached snapshot, or loads a new one.
// Concurrent loads are coalesced through singleflight.
func (c *snapshotCache) GetOrLoad(ctx context.Context, load func(context.Context) ([]Record, error)) ([]Record, error) {
	// Fast path: check if snapshot exists and is fresh
	c.mu.RLock()
	if c.isFresh() {
		out := append([]Record{}, c.records...)
		c.mu.RUnlock()
		return out, nil
	}
	gen := c.gen
	c.mu.RUnlock()

	// Keyed by generation so callers arriving after an invalidation never join a
	// load that started before it.
	result, err, _ := c.sf.Do(strconv.FormatUint(gen, 10), func() (interface{}, error) {
		records, err := load(ctx)
		if err != nil {
			return nil, err
		}

		if c.ttl > 0 {
			c.mu.Lock()
			if c.gen == gen {
				c.records = records
				c.valid = true
				c.built = time.Now()
			}
			c.mu.Unlock()
		}
		return records, nil
	})
	if err != nil {
		return nil, err
	}

	return append([]Record{}, result.([]Record)...), nil
}
