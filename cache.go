// FILE: lixenwraith/classkit/cache.go
package classkit

import (
	"sync"
	"sync/atomic"
)

// Cache memoizes resolved fragments by their full class key.
// There is no eviction; Clear drops every entry at once.
type Cache struct {
	items  map[string]Fragment
	mutex  sync.RWMutex
	hits   atomic.Int64
	misses atomic.Int64
}

// CacheStats reports cache usage since creation.
type CacheStats struct {
	Entries int
	Hits    int64
	Misses  int64
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{items: make(map[string]Fragment)}
}

// Get returns the fragment cached for key.
func (c *Cache) Get(key string) (Fragment, bool) {
	c.mutex.RLock()
	f, ok := c.items[key]
	c.mutex.RUnlock()

	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return f, ok
}

// Set stores the fragment for key.
func (c *Cache) Set(key string, f Fragment) {
	c.mutex.Lock()
	c.items[key] = f
	c.mutex.Unlock()
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.mutex.Lock()
	c.items = make(map[string]Fragment)
	c.mutex.Unlock()
}

// Len returns the number of cached keys.
func (c *Cache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.items)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Entries: c.Len(),
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
	}
}
