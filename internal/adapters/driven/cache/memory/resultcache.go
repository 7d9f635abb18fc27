// Package memory provides an in-memory TTL implementation of
// driven.ResultCache.
package memory

import (
	"sync"
	"time"

	"github.com/madkurv-labs/varesearch-cli/internal/core/domain"
	"github.com/madkurv-labs/varesearch-cli/internal/core/ports/driven"
)

// Ensure ResultCache implements the interface.
var _ driven.ResultCache = (*ResultCache)(nil)

// entry is one cached ranking with its creation time.
type entry struct {
	matches  []domain.ProductMatch
	storedAt time.Time
}

// ResultCache memoises ranked shop results per literal query with a
// bounded TTL. Safe for concurrent use. Expired entries are evicted
// lazily on read; there is no background sweeper at the entry counts
// involved (one entry per distinct query string).
type ResultCache struct {
	mu    sync.RWMutex
	ttl   time.Duration
	now   func() time.Time
	store map[string]entry
}

// NewResultCache creates a cache with the given TTL. A zero or
// negative ttl disables caching: Get always misses and Put is a no-op.
func NewResultCache(ttl time.Duration) *ResultCache {
	return &ResultCache{
		ttl:   ttl,
		now:   time.Now,
		store: make(map[string]entry),
	}
}

// Get returns the cached matches for a query if still fresh.
// The returned slice is a copy; callers may truncate it freely.
func (c *ResultCache) Get(query string) ([]domain.ProductMatch, bool) {
	if c == nil || c.ttl <= 0 {
		return nil, false
	}

	c.mu.RLock()
	e, ok := c.store[query]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if c.now().Sub(e.storedAt) > c.ttl {
		c.mu.Lock()
		delete(c.store, query)
		c.mu.Unlock()
		return nil, false
	}

	matches := make([]domain.ProductMatch, len(e.matches))
	copy(matches, e.matches)
	return matches, true
}

// Put stores the matches for a query. The cache keeps its own copy so
// later caller-side mutation cannot corrupt the entry.
func (c *ResultCache) Put(query string, matches []domain.ProductMatch) {
	if c == nil || c.ttl <= 0 {
		return
	}

	stored := make([]domain.ProductMatch, len(matches))
	copy(stored, matches)

	c.mu.Lock()
	c.store[query] = entry{matches: stored, storedAt: c.now()}
	c.mu.Unlock()
}

// Len returns the number of live entries, counting expired ones that
// have not been evicted yet. Used by tests and diagnostics.
func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}
