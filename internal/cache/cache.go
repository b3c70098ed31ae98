// Package cache provides a small in-memory cache for platform API reads,
// so repeated console calls within a resource's freshness window don't
// round-trip to the backend.
package cache

import (
	"strings"
	"sync"
	"time"
)

// entry wraps a cached value with expiry and insertion order tracking.
type entry struct {
	value     any
	expiry    time.Time
	insertIdx int64
}

// ResourceCache caches decoded platform resources keyed by resource family
// and qualifier, e.g. "funds:active" or "relationships:group:12". TTL is
// per entry because resource families have different freshness windows.
// Thread-safe with sync.RWMutex.
type ResourceCache struct {
	mu         sync.RWMutex
	items      map[string]entry
	maxEntries int
	nextIdx    int64
}

// New creates a ResourceCache bounded to maxEntries.
func New(maxEntries int) *ResourceCache {
	if maxEntries <= 0 {
		maxEntries = 256
	}
	return &ResourceCache{
		items:      make(map[string]entry),
		maxEntries: maxEntries,
	}
}

// Key joins key parts with ':' into a cache key.
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}

// Get returns a cached value if present and not expired.
func (c *ResourceCache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if time.Now().After(e.expiry) {
		// Expired: remove lazily
		c.mu.Lock()
		if e2, ok2 := c.items[key]; ok2 && time.Now().After(e2.expiry) {
			delete(c.items, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

// Set stores a value with its own TTL. Evicts the oldest entry at capacity.
func (c *ResourceCache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := entry{
		value:     value,
		expiry:    time.Now().Add(ttl),
		insertIdx: c.nextIdx,
	}
	c.nextIdx++

	// If key already exists, update in place (no capacity change)
	if _, exists := c.items[key]; exists {
		c.items[key] = e
		return
	}

	if len(c.items) >= c.maxEntries {
		c.evictOldest()
	}

	c.items[key] = e
}

// InvalidatePrefix removes all entries whose key starts with the prefix.
// Mutations call this so the next read of the affected resource family
// goes back to the platform.
func (c *ResourceCache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
		}
	}
}

// Len returns the number of cached entries, expired ones included.
func (c *ResourceCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// evictOldest removes the entry with the lowest insertIdx. Must be called with mu held.
func (c *ResourceCache) evictOldest() {
	var oldestKey string
	var oldestIdx int64 = -1

	for key, e := range c.items {
		if oldestIdx == -1 || e.insertIdx < oldestIdx {
			oldestIdx = e.insertIdx
			oldestKey = key
		}
	}

	if oldestKey != "" {
		delete(c.items, oldestKey)
	}
}
