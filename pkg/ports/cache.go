package ports

import "context"

// RenderCache defines the interface for caching rendered documents.
// Rendering is pure, so cached output keyed by content digest and format
// never goes stale for a given catalog value.
type RenderCache interface {
	// Save stores the rendered document under the given key.
	Save(ctx context.Context, key string, doc string) error

	// Load retrieves a rendered document.
	// Returns domain.ErrCacheMiss if no entry exists for the key.
	Load(ctx context.Context, key string) (string, error)

	// Delete removes a cached document. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
