package jobads

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryCache is an in-memory extraction cache.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

// NewMemoryCache constructs a MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: make(map[string]json.RawMessage)}
}

// Get returns the cached result for a key.
func (c *MemoryCache) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	raw, ok := c.data[key]
	return raw, ok, nil
}

// Put stores a result under a key.
func (c *MemoryCache) Put(ctx context.Context, key string, result json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = result
	return nil
}

var _ Cache = (*MemoryCache)(nil)
