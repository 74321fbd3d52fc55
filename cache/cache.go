package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache is a string-keyed ristretto cache with a name used in stats output.
type Cache[T any] struct {
	impl *ristretto.Cache[string, T]
	name string
	ttl  time.Duration
}

// New creates a cache whose entries live for ttl. costFunc reports the
// memory cost of a value.
func New[T any](name string, ttl time.Duration, costFunc func(T) int64) (*Cache[T], error) {
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: 1e4,     // number of keys to track frequency of (10k)
		MaxCost:     1 << 26, // maximum cost of cache (64MB)
		BufferItems: 64,      // number of keys per Get buffer
		Metrics:     true,
		Cost:        costFunc,
	})
	if err != nil {
		return nil, err
	}

	return &Cache[T]{
		impl: impl,
		name: name,
		ttl:  ttl,
	}, nil
}

// Get retrieves a value from the cache
func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores a value with the cache's TTL and waits until it is visible to Get.
func (c *Cache[T]) Set(key string, value T) bool {
	ok := c.impl.SetWithTTL(key, value, 0, c.ttl)
	c.impl.Wait()
	return ok
}

// GetOrSet returns the cached value for key, building and storing it on a miss.
func (c *Cache[T]) GetOrSet(key string, build func() (T, error)) (T, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := build()
	if err != nil {
		return v, err
	}
	c.Set(key, v)
	return v, nil
}

func (c *Cache[T]) Close() {
	c.impl.Close()
}

// ItemCount returns the current number of items in the cache
func (c *Cache[T]) ItemCount() int64 {
	return int64(c.impl.Metrics.KeysAdded() - c.impl.Metrics.KeysEvicted())
}

// Stats returns cache statistics for the health endpoint.
func (c *Cache[T]) Stats() map[string]interface{} {
	metrics := c.impl.Metrics

	hitRate := 0.0
	totalRequests := metrics.Hits() + metrics.Misses()
	if totalRequests > 0 {
		hitRate = float64(metrics.Hits()) / float64(totalRequests) * 100
	}

	memoryUsed := metrics.CostAdded() - metrics.CostEvicted()

	return map[string]interface{}{
		"cache_type":     c.name,
		"hits":           metrics.Hits(),
		"misses":         metrics.Misses(),
		"sets":           metrics.KeysAdded(),
		"total_requests": totalRequests,
		"hit_rate":       hitRate,
		"sets_dropped":   metrics.SetsDropped(),
		"sets_rejected":  metrics.SetsRejected(),
		"memory_used_kb": float64(memoryUsed) / 1024,
		"current_items":  c.ItemCount(),
		"ttl_seconds":    int64(c.ttl.Seconds()),
	}
}
