package cache

import (
	gocache "github.com/patrickmn/go-cache"
)

// Memory implements an in-memory value cache. Entries never expire; a word's
// value under a fixed method is immutable.
type Memory struct {
	cache *gocache.Cache
}

// NewMemory creates a new memory cache.
func NewMemory() *Memory {
	return &Memory{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get retrieves a cached value.
func (m *Memory) Get(key string) (int, bool) {
	if val, found := m.cache.Get(key); found {
		return val.(int), true
	}
	return 0, false
}

// Set stores a calculated value.
func (m *Memory) Set(key string, value int) {
	m.cache.Set(key, value, gocache.NoExpiration)
}

// Flush removes all cached values.
func (m *Memory) Flush() {
	m.cache.Flush()
}
