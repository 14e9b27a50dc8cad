// Package periodcache holds remote period summaries for a short time.
package periodcache

import (
	"sync"
	"time"

	"github.com/heartmarshall/pet-health-journal/internal/domain"
)

// Key identifies a cached period.
type Key struct {
	Subject string
	Start   string
	End     string
}

type entry struct {
	days     []domain.PeriodDay
	storedAt time.Time
}

// Cache is a TTL cache of period summaries. Any journal write clears it.
//
// Clear bumps a generation counter. A reader takes the generation before
// fetching and passes it to Put, so a fetch that raced with a write cannot
// repopulate the cache with pre-write data.
type Cache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	gen     uint64
	entries map[Key]entry
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New creates a Cache whose entries live for ttl.
func New(ttl time.Duration, opts ...Option) *Cache {
	c := &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[Key]entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the days stored under k if they are younger than the TTL.
// The returned slice is shared and must not be modified.
func (c *Cache) Get(k Key) ([]domain.PeriodDay, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[k]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.entries, k)
		return nil, false
	}
	return e.days, true
}

// Generation returns the current invalidation generation.
func (c *Cache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// Put stores days under k unless the cache was cleared after gen was taken.
// It reports whether the entry was stored.
func (c *Cache) Put(k Key, days []domain.PeriodDay, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return false
	}
	c.entries[k] = entry{days: days, storedAt: c.now()}
	return true
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	clear(c.entries)
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
