// Package countcache memoizes aggregate row counts per filter condition.
//
// The aggregate COUNT over a filtered LIKE predicate is the dominant cost in
// the grid query path, an order of magnitude slower than fetching the page
// of rows itself. The grid only needs the total for page-count display and
// "is there a next page" logic, so a total that lags reality by up to the
// TTL is an acceptable, intentional trade against latency.
//
// Concurrent misses for the same key are not serialized: each caller
// recomputes and overwrites the entry. Mutual exclusion would add latency to
// a rarely contended, read-mostly resource, and independently computed
// values for one key are interchangeable within the TTL window.
package countcache

import (
	"sync"
	"time"
)

// DefaultTTL bounds how stale a cached count may be.
const DefaultTTL = 30 * time.Second

// Clock supplies the current time. Injectable so tests can step time
// deterministically instead of sleeping through TTLs.
type Clock func() time.Time

type entry struct {
	count     int64
	expiresAt time.Time
}

// Cache is an in-process TTL cache of row counts keyed by normalized filter
// condition (datagrid.FilterSpec.CacheKey). It implements
// datagrid.CountCache.
//
// Eviction is lazy: an expired entry is removed when a Get finds it, and a
// stale entry is overwritten in place by the next Set. There is no
// background sweep; at most one live entry exists per key.
type Cache struct {
	ttl time.Duration
	now Clock

	mu      sync.RWMutex
	entries map[string]entry
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL sets the staleness bound for cached counts.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock substitutes the time source. Intended for tests.
func WithClock(clock Clock) Option {
	return func(c *Cache) {
		if clock != nil {
			c.now = clock
		}
	}
}

// New creates a count cache with DefaultTTL unless overridden.
func New(opts ...Option) *Cache {
	c := &Cache{
		ttl:     DefaultTTL,
		now:     time.Now,
		entries: make(map[string]entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached count for key. An entry past its expiry is treated
// as absent and removed.
func (c *Cache) Get(key string) (int64, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return 0, false
	}

	if !c.now().Before(e.expiresAt) {
		c.mu.Lock()
		// Only remove the entry we saw: a concurrent Set may have already
		// replaced it with a fresh one.
		if cur, still := c.entries[key]; still && cur == e {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return 0, false
	}

	return e.count, true
}

// Set stores the count for key with a fresh TTL starting now. An existing
// entry is replaced, never appended to.
func (c *Cache) Set(key string, count int64) {
	e := entry{
		count:     count,
		expiresAt: c.now().Add(c.ttl),
	}

	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
}

// TTL reports the configured staleness bound. Executors surface it in result
// metadata so clients know how stale a displayed total may be.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Len reports the number of stored entries, expired or not. Expired entries
// linger until a Get touches them; Len is for tests and stats, not
// correctness.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
