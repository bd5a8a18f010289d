package index

import (
	"sync"
	"sync/atomic"

	"github.com/okian/jobmatch/internal/domain/personality"
)

// memoCache is a bounded map from normalized title to inferred personality
// vector. Each snapshot owns exactly one cache, so a snapshot swap replaces
// the cache wholesale and stale entries can never outlive their index.
// Eviction drops the oldest inserted key once maxSize is reached.
type memoCache struct {
	mu      sync.RWMutex
	entries map[string]personality.Vector
	order   []string // insertion order; order[head:] are live keys
	head    int
	maxSize int

	hits   atomic.Int64
	misses atomic.Int64
}

func newMemoCache(maxSize int) *memoCache {
	if maxSize <= 0 {
		maxSize = defaultCacheSize
	}
	return &memoCache{
		entries: make(map[string]personality.Vector, maxSize),
		maxSize: maxSize,
	}
}

// get returns the cached vector for key, counting hits and misses.
func (c *memoCache) get(key string) (personality.Vector, bool) {
	c.mu.RLock()
	v, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// put stores key, evicting the oldest entry when the cache is full.
func (c *memoCache) put(key string, v personality.Vector) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = v
		return
	}
	for len(c.entries) >= c.maxSize && c.head < len(c.order) {
		oldest := c.order[c.head]
		c.head++
		delete(c.entries, oldest)
	}
	// Compact the order slice once the dead prefix dominates.
	if c.head > 0 && c.head*2 >= len(c.order) {
		c.order = append([]string(nil), c.order[c.head:]...)
		c.head = 0
	}
	c.entries[key] = v
	c.order = append(c.order, key)
}

// invalidate empties the cache. Build installs a fresh cache instead of
// calling this; it exists for callers that keep a snapshot but must drop
// memoized lookups.
func (c *memoCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]personality.Vector, c.maxSize)
	c.order = nil
	c.head = 0
}

// stats returns cumulative hit and miss counts.
func (c *memoCache) stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// size returns the number of live entries.
func (c *memoCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
