package cache

import (
	"sync"
	"time"

	"github.com/preston-bernstein/cfb-display-service/internal/jsonshape"
)

// Entry is one cached upstream document and the instant it was fetched.
type Entry struct {
	Key       string
	FetchedAt time.Time
	Payload   jsonshape.Document
}

// TTLCache keeps fetched documents in memory keyed by request key.
// Entries are never evicted; a stale entry is replaced on the next store.
type TTLCache struct {
	mu      sync.RWMutex
	entries map[string]Entry
	now     func() time.Time
}

// New constructs an empty cache backed by the wall clock.
func New() *TTLCache {
	return NewWithClock(time.Now)
}

// NewWithClock constructs an empty cache using the provided time source.
func NewWithClock(now func() time.Time) *TTLCache {
	if now == nil {
		now = time.Now
	}
	return &TTLCache{
		entries: make(map[string]Entry),
		now:     now,
	}
}

// Get returns the payload stored for key when it is younger than ttl.
// A non-positive ttl never hits.
func (c *TTLCache) Get(key string, ttl time.Duration) (jsonshape.Document, bool) {
	if ttl <= 0 {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.FetchedAt) >= ttl {
		return nil, false
	}
	return entry.Payload, true
}

// Set stores payload for key stamped with the current time.
func (c *TTLCache) Set(key string, payload jsonshape.Document) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = Entry{Key: key, FetchedAt: c.now(), Payload: payload}
}

// Lookup returns the raw entry for key regardless of age.
func (c *TTLCache) Lookup(key string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	return entry, ok
}

// Len reports how many keys are stored.
func (c *TTLCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
