package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/rosetta/pkg/domain"
	"github.com/aretw0/rosetta/pkg/ports"
)

// CatalogLoaderContractTest is a reusable test suite that verifies if an
// adapter complies with ports.CatalogLoader.
//
// setupData maps topic names to the raw bytes the loader must return;
// wantOrder is the authored order ListTopics must preserve.
func CatalogLoaderContractTest(t *testing.T, loader ports.CatalogLoader, setupData map[string][]byte, wantOrder []string) {
	t.Helper()

	// 1. Test GetTopic (Success)
	t.Run("GetTopic_Success", func(t *testing.T) {
		for name, expectedContent := range setupData {
			content, err := loader.GetTopic(name)
			if err != nil {
				t.Fatalf("unexpected error getting topic %s: %v", name, err)
			}
			if string(content) != string(expectedContent) {
				t.Errorf("content mismatch for %s. got %q, want %q", name, content, expectedContent)
			}
		}
	})

	// 2. Test GetTopic (NotFound)
	t.Run("GetTopic_NotFound", func(t *testing.T) {
		_, err := loader.GetTopic("nonexistent_topic")
		if err == nil {
			t.Error("expected error for nonexistent topic, got nil")
		}
		if !errors.Is(err, domain.ErrTopicNotFound) {
			t.Errorf("expected ErrTopicNotFound, got %v", err)
		}
	})

	// 3. Test ListTopics order (must hold on repeated calls)
	t.Run("ListTopics_Order", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			names, err := loader.ListTopics()
			if err != nil {
				t.Fatalf("unexpected error listing topics: %v", err)
			}
			if len(names) != len(wantOrder) {
				t.Fatalf("expected %d topics, got %d", len(wantOrder), len(names))
			}
			for j, name := range wantOrder {
				if names[j] != name {
					t.Errorf("position %d: got %s, want %s", j, names[j], name)
				}
			}
		}
	})
}

// RenderCacheContractTest verifies that an implementation complies with the
// ports.RenderCache semantics.
func RenderCacheContractTest(t *testing.T, cache ports.RenderCache) {
	t.Helper()

	ctx := context.Background()
	key := "render:markdown:abc123"

	// 1. Load missing key
	_, err := cache.Load(ctx, key)
	if !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("expected ErrCacheMiss for missing key, got %v", err)
	}

	// 2. Save and load back
	doc := "## slice\n\nmtcars[1:5, ]\n"
	if err := cache.Save(ctx, key, doc); err != nil {
		t.Fatalf("failed to save document: %v", err)
	}
	loaded, err := cache.Load(ctx, key)
	if err != nil {
		t.Fatalf("failed to load document: %v", err)
	}
	if loaded != doc {
		t.Errorf("document mismatch. got %q, want %q", loaded, doc)
	}

	// 3. Delete and load again
	if err := cache.Delete(ctx, key); err != nil {
		t.Fatalf("failed to delete document: %v", err)
	}
	_, err = cache.Load(ctx, key)
	if !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("expected ErrCacheMiss after delete, got %v", err)
	}

	// 4. Deleting an absent key is not an error
	if err := cache.Delete(ctx, "rosetta:render:never-existed"); err != nil {
		t.Errorf("delete of absent key should not fail, got %v", err)
	}
}
