// Package cache contains in-memory caches
package cache

import (
	lru "github.com/hashicorp/golang-lru"
)

// DefaultObjectCacheSize is the number of objects kept in memory by
// default
const DefaultObjectCacheSize = 1000

// LRU represents a LRU cache of object contents, keyed by their
// fingerprint
type LRU struct {
	cache *lru.Cache
}

// NewLRU creates a new LRU Cache.
// maxEntries must be positive
func NewLRU(maxEntries int) (*LRU, error) {
	c, err := lru.New(maxEntries)
	if err != nil {
		return nil, err
	}
	return &LRU{
		cache: c,
	}, nil
}

// Get looks up an object's content from the cache.
func (c *LRU) Get(key string) (data []byte, ok bool) {
	v, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	data, ok = v.([]byte)
	return data, ok
}

// Add adds an object's content to the cache.
func (c *LRU) Add(key string, data []byte) {
	c.cache.Add(key, data)
}

// Contains returns whether the key is in the cache, without updating
// its recentness
func (c *LRU) Contains(key string) bool {
	return c.cache.Contains(key)
}

// Clear purges all stored items from the cache.
func (c *LRU) Clear() {
	c.cache.Purge()
}

// Len returns the number of items in the cache.
func (c *LRU) Len() int {
	return c.cache.Len()
}
