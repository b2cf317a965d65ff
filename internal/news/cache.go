package news

import (
	"sync"
	"time"
)

// Cache is a TTL-gated response cache keyed by query signature. It is
// an explicit, injected dependency rather than a package-level
// singleton so tests can swap in a short TTL or a frozen clock.
type Cache struct {
	ttl     time.Duration
	now     func() time.Time
	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	result   *Result
	storedAt time.Time
}

// DefaultCacheTTL gates how long a news response is reused.
const DefaultCacheTTL = 60 * time.Second

// NewCache creates a cache with the given TTL. A zero ttl uses
// DefaultCacheTTL.
func NewCache(ttl time.Duration) *Cache {
	return newCacheWithClock(ttl, time.Now)
}

func newCacheWithClock(ttl time.Duration, now func() time.Time) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the cached result for the key when still fresh.
func (c *Cache) Get(key string) (*Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.storedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.result, true
}

// Put stores a result under the key, resetting its TTL window.
func (c *Cache) Put(key string, result *Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{result: result, storedAt: c.now()}
}
