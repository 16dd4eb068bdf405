// Package viewcache is a small in-process cache for page-level aggregates.
// Mutating handlers invalidate the affected views before returning, so a
// read issued after a successful write never observes stale data.
package viewcache

import (
	"strings"
	"sync"
	"time"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Cache is a TTL cache keyed by "<ownerID>:<view>" strings.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
}

// New creates a cache whose entries live for at most ttl.
func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]entry),
	}
}

// Key builds a cache key from the owner scope and view name.
func Key(ownerID, view string) string {
	return ownerID + ":" + view
}

// Get returns the cached value for key, if present and unexpired.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Set stores value under key.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	c.entries[key] = entry{value: value, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// Invalidate drops every entry whose key starts with one of the given
// prefixes. Invalidating by owner id drops all of that tenant's views.
func (c *Cache) Invalidate(prefixes ...string) {
	c.mu.Lock()
	for key := range c.entries {
		for _, p := range prefixes {
			if strings.HasPrefix(key, p) {
				delete(c.entries, key)
				break
			}
		}
	}
	c.mu.Unlock()
}
