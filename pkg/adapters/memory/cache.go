package memory

import (
	"context"
	"sync"

	"github.com/aretw0/rosetta/pkg/domain"
)

// Cache implements ports.RenderCache using an in-memory map.
// Useful for tests and single-process deployments.
type Cache struct {
	mu   sync.RWMutex
	docs map[string]string
}

// NewCache creates a new empty render cache.
func NewCache() *Cache {
	return &Cache{
		docs: make(map[string]string),
	}
}

// Save stores the rendered document under the given key.
func (c *Cache) Save(ctx context.Context, key string, doc string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs[key] = doc
	return nil
}

// Load retrieves a rendered document.
func (c *Cache) Load(ctx context.Context, key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	doc, ok := c.docs[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return doc, nil
}

// Delete removes a cached document.
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.docs, key)
	return nil
}
