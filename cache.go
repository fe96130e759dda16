package enginepages

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// RenderCache holds rendered alternates (Markdown pages, resized images)
// keyed by request path, each kept for ttl.
type RenderCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	gen     uint64
	ttl     time.Duration
	fills   singleflight.Group
}

type cacheEntry struct {
	data    []byte
	fetched time.Time
}

// NewRenderCache creates an empty RenderCache.
func NewRenderCache(ttl time.Duration) *RenderCache {
	return &RenderCache{entries: make(map[string]cacheEntry), ttl: ttl}
}

func (c *RenderCache) lookup(key string) ([]byte, uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if ok && time.Since(e.fetched) < c.ttl {
		return e.data, c.gen, true
	}
	return nil, c.gen, false
}

// Get returns the cached bytes for key, calling fill to produce them when
// the entry is missing or stale. fill runs without holding the cache lock;
// concurrent misses on the same key share a single call. Errors from fill
// are not cached.
func (c *RenderCache) Get(key string, fill func() ([]byte, error)) ([]byte, error) {
	if data, _, ok := c.lookup(key); ok {
		return data, nil
	}
	v, err, _ := c.fills.Do(key, func() (any, error) {
		data, gen, ok := c.lookup(key)
		if ok {
			return data, nil
		}
		data, err := fill()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		// Drop results that raced with Invalidate.
		if c.gen == gen {
			c.entries[key] = cacheEntry{data: data, fetched: time.Now()}
		}
		c.mu.Unlock()
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Invalidate clears the cache so the next read triggers a fresh fill.
func (c *RenderCache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.gen++
	c.mu.Unlock()
}

// Len returns the number of cached entries, stale ones included.
func (c *RenderCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
