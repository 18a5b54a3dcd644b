package canter

import "sync"

// ScrollCache remembers the last vertical scroll offset seen for each path so
// back/forward navigation can restore it. Entries are never evicted; the cache
// lives as long as the page does.
type ScrollCache struct {
	mu      sync.RWMutex
	offsets map[string]float64
}

func NewScrollCache() *ScrollCache {
	return &ScrollCache{
		offsets: make(map[string]float64),
	}
}

// Record stores offset for path, replacing any earlier value.
// Negative offsets are stored as 0.
func (c *ScrollCache) Record(path string, offset float64) {
	if offset < 0 {
		offset = 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offsets[path] = offset
}

// Get returns the offset recorded for path, if any.
func (c *ScrollCache) Get(path string) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	offset, ok := c.offsets[path]
	return offset, ok
}

func (c *ScrollCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.offsets)
}
