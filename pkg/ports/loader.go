package ports

import "context"

// CatalogLoader defines how the catalog retrieves topic definitions.
// This allows the storage layer (Loam, FS, Memory) to be decoupled.
type CatalogLoader interface {
	// GetTopic retrieves the raw definition of a topic by name.
	// It returns the raw bytes (which the catalog parser decodes) or an error.
	GetTopic(name string) ([]byte, error)

	// ListTopics returns all topic names in authored order.
	// Order is authoritative: it reflects the pedagogical progression and
	// must be preserved on every call.
	ListTopics() ([]string, error)
}

// Watchable defines an interface for loaders that can notify about backend changes.
// This is typically used for hot-reload or dev-mode functionality.
type Watchable interface {
	// Watch returns a channel that receives the changed topic name (or source
	// path) whenever the underlying catalog content changes.
	Watch(ctx context.Context) (<-chan string, error)
}
