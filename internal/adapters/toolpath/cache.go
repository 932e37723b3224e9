// Package toolpath resolves and caches the paths of toolchain binaries.
package toolpath

import (
	"maps"
	"sync"
)

// Cache holds resolved tool paths for the lifetime of the process.
//
// Entries are write-once: the first path stored under a key is kept and
// later stores return it unchanged.
type Cache struct {
	mu    sync.RWMutex
	paths map[string]string // cache key -> canonical path
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{
		paths: make(map[string]string),
	}
}

// Load returns the cached path for key.
func (c *Cache) Load(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	path, ok := c.paths[key]
	return path, ok
}

// Store records path under key unless an entry already exists.
// It returns the path that is cached after the call.
func (c *Cache) Store(key, path string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.paths[key]; ok {
		return existing
	}
	c.paths[key] = path
	return path
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.paths)
}

// Snapshot returns a copy of all cached entries.
func (c *Cache) Snapshot() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return maps.Clone(c.paths)
}
