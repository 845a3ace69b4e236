package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/rosetta/pkg/adapters/redis"
	"github.com/aretw0/rosetta/pkg/domain"
	"github.com/aretw0/rosetta/pkg/ports/tests"
	backend "github.com/redis/go-redis/v9"
)

func TestRedisCache_Contract(t *testing.T) {
	// Setup miniredis
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	cache := redis.NewFromClient(client)
	tests.RenderCacheContractTest(t, cache)
}

func TestRedisCache_TTLExpiry(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	cache := redis.NewFromClient(client, redis.WithTTL(time.Minute))
	ctx := context.Background()

	if err := cache.Save(ctx, "markdown:digest", "## slice"); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	// Advance past the TTL; miniredis expires lazily on FastForward.
	mr.FastForward(2 * time.Minute)

	_, err = cache.Load(ctx, "markdown:digest")
	if !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("expected ErrCacheMiss after TTL, got %v", err)
	}
}
