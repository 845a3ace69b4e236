package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/rosetta/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Cache implements ports.RenderCache using Redis.
// Keys are content-addressed (catalog digest + format), so entries never go
// stale for a given catalog value; TTL just bounds memory.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Cache)

// WithTTL sets the expiration for cached documents.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix for cached documents.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a new Redis cache with options.
func New(address, password string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromURL creates a new Redis cache from a connection URL,
// e.g. redis://localhost:6379/0.
func NewFromURL(rawURL string, opts ...Option) (*Cache, error) {
	cfg, err := backend.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return NewFromClient(backend.NewClient(cfg), opts...), nil
}

// NewFromClient creates a new Redis cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	cache := &Cache{
		client: client,
		prefix: "rosetta:render:",
		ttl:    24 * time.Hour,
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

func (c *Cache) key(key string) string {
	return c.prefix + key
}

// Save persists the rendered document to Redis.
func (c *Cache) Save(ctx context.Context, key string, doc string) error {
	if err := c.client.Set(ctx, c.key(key), doc, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves the rendered document from Redis.
func (c *Cache) Load(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, c.key(key)).Result()
	if err != nil {
		if err == backend.Nil {
			return "", domain.ErrCacheMiss
		}
		return "", fmt.Errorf("failed to get from redis: %w", err)
	}
	return val, nil
}

// Delete removes the cached document.
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.key(key)).Err()
}

// Close closes the redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}
