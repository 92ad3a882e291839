// Package cache holds the read cache of the planning views.
package cache

import "sync"

// TodayPlanningKey is the only key in use: the planning of the current day.
const TodayPlanningKey = "today_planning"

// PlanningCache is a small key-value cache. Writers invalidate explicitly.
type PlanningCache interface {
	Has(key string) bool
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
	Delete(key string)
}

// MemoryCache is an in-process PlanningCache.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]interface{}
}

var _ PlanningCache = (*MemoryCache)(nil)

// NewMemoryCache creates an empty cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]interface{})}
}

// Has reports whether key holds a value
func (c *MemoryCache) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[key]
	return ok
}

// Get returns the value stored under key
func (c *MemoryCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// Set stores value under key
func (c *MemoryCache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Delete drops key. Deleting a missing key is a no-op.
func (c *MemoryCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}
