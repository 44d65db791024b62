// Package signing holds the client-side read path for private media:
// an in-memory cache of signed values, a coalescing ensurer that talks to
// the issuance collaborators, a prefetcher that warms the cache, and a
// resolver that turns signed values into renderable URLs.
//
// A Cache and its Ensurer are owned by the authenticated session: they are
// constructed at sign-in and cleared at sign-out, never shared across users.
package signing

import (
	"sync"
	"time"
)

type cacheEntry struct {
	value     string
	expiresAt time.Time
}

// Cache is an in-memory store of signed values keyed by asset id.
// It does no network I/O and never fails; expiry is enforced on read,
// so a value is absent once its deadline passes even if the best-effort
// eviction timer has not fired yet.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	timers  map[string]*time.Timer
	now     func() time.Time
}

// NewCache returns an empty cache using the wall clock.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		timers:  make(map[string]*time.Timer),
		now:     time.Now,
	}
}

// Get returns the cached value for id, or ok=false if it is missing or
// already expired.
func (c *Cache) Get(id string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[id]
	if !ok {
		return "", false
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, id)
		c.stopTimerLocked(id)
		return "", false
	}
	return e.value, true
}

// Set stores value for id with the given TTL, overwriting any previous
// entry, and schedules a best-effort eviction.
func (c *Cache) Set(id, value string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopTimerLocked(id)
	c.entries[id] = cacheEntry{value: value, expiresAt: c.now().Add(ttl)}
	c.timers[id] = time.AfterFunc(ttl, func() { c.Invalidate(id) })
}

// Invalidate drops the entry for id, if any.
func (c *Cache) Invalidate(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, id)
	c.stopTimerLocked(id)
}

// Clear drops every entry. Called on sign-out so one user's signed
// credentials cannot leak into the next session.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id := range c.timers {
		c.stopTimerLocked(id)
	}
	c.entries = make(map[string]cacheEntry)
}

func (c *Cache) stopTimerLocked(id string) {
	if t, ok := c.timers[id]; ok {
		t.Stop()
		delete(c.timers, id)
	}
}
