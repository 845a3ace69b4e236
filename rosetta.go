package rosetta

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/loam"
	"github.com/aretw0/rosetta/internal/catalog"
	loamAdapter "github.com/aretw0/rosetta/pkg/adapters/loam"
	"github.com/aretw0/rosetta/pkg/domain"
	"github.com/aretw0/rosetta/pkg/observability"
	"github.com/aretw0/rosetta/pkg/ports"
)

// Version is the library version reported by the serving adapters.
var Version = "0.1.0"

// Format names accepted by RenderAll, re-exported for consumers.
const (
	FormatPlain    = catalog.FormatPlain
	FormatMarkdown = catalog.FormatMarkdown
)

// ErrUnknownFormat is returned when RenderAll receives an unrecognized format.
var ErrUnknownFormat = catalog.ErrUnknownFormat

// Formats returns the recognized render format names.
func Formats() []string {
	return catalog.Formats()
}

// Catalog is the high-level entry point for the Rosetta library.
// It wraps the internal catalog value and provides a simplified API for
// consumers. Once constructed it is immutable; any number of readers may use
// it concurrently.
type Catalog struct {
	inner   *catalog.Catalog
	loader  ports.CatalogLoader
	cache   ports.RenderCache
	logger  *slog.Logger
	metrics *observability.Metrics
	Name    string
}

// Option defines a functional option for configuring the Catalog.
type Option func(*Catalog)

// WithLoader injects a custom CatalogLoader, bypassing the default Loam initialization.
func WithLoader(l ports.CatalogLoader) Option {
	return func(c *Catalog) {
		c.loader = l
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// WithRenderCache enables caching of rendered documents.
// The cache is keyed on format and catalog digest, so entries never go stale.
func WithRenderCache(cache ports.RenderCache) Option {
	return func(c *Catalog) {
		c.cache = cache
	}
}

// WithMetrics attaches observability collectors; the render cache path
// reports hits and misses through them.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Catalog) {
		c.metrics = m
	}
}

// New initializes a new Rosetta Catalog.
// By default, it loads topics from a Loam repository at the given path.
// If the WithLoader option is provided, repoPath can be empty and Loam is skipped.
func New(repoPath string, opts ...Option) (*Catalog, error) {
	cat := &Catalog{}

	// Apply Options first to check if a loader is provided
	for _, opt := range opts {
		opt(cat)
	}

	// If no loader was injected, initialize the default Loam adapter
	if cat.loader == nil {
		if repoPath == "" {
			return nil, fmt.Errorf("repoPath is required when no custom loader is provided")
		}

		absPath, err := filepath.Abs(repoPath)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}

		cat.Name = filepath.Base(absPath)

		// Strict mode keeps frontmatter types consistent; ReadOnly because the
		// catalog never modifies its source.
		repo, err := loam.Init(absPath,
			loam.WithStrict(true),
			loam.WithReadOnly(true),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize loam: %w", err)
		}

		typedRepo := loam.NewTypedRepository[loamAdapter.TopicMetadata](repo)
		cat.loader = loamAdapter.New(typedRepo)
	} else if repoPath != "" {
		// With a custom loader, repoPath serves as a descriptive label.
		cat.Name = filepath.Base(repoPath)
	}

	// Ensure logger is initialized
	if cat.logger == nil {
		cat.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if cat.Name != "" {
		cat.logger = cat.logger.With("catalog", cat.Name)
	}

	inner, err := catalog.Build(cat.loader)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}
	cat.inner = inner

	cat.logger.Debug("catalog built", "topics", inner.Len(), "digest", inner.Digest())

	return cat, nil
}

// Topics returns the topic names in authored order.
func (c *Catalog) Topics() []string {
	return c.inner.Topics()
}

// Get retrieves a topic by name.
// Returns domain.ErrTopicNotFound when the name is absent.
func (c *Catalog) Get(name string) (domain.Topic, error) {
	return c.inner.Get(name)
}

// All returns every topic in authored order.
func (c *Catalog) All() []domain.Topic {
	return c.inner.All()
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return c.inner.Len()
}

// Digest returns a stable content digest of the catalog.
func (c *Catalog) Digest() string {
	return c.inner.Digest()
}

// RenderAll produces the full document in the given format.
// When a render cache is configured, the result is content-addressed there.
func (c *Catalog) RenderAll(ctx context.Context, format string) (string, error) {
	if c.cache == nil {
		return c.inner.RenderAll(format)
	}

	key := format + ":" + c.inner.Digest()
	if doc, err := c.cache.Load(ctx, key); err == nil {
		if c.metrics != nil {
			c.metrics.CacheHitTotal.Inc()
		}
		c.logger.Debug("render served from cache", "format", format)
		return doc, nil
	}
	if c.metrics != nil {
		c.metrics.CacheMissTotal.Inc()
	}

	doc, err := c.inner.RenderAll(format)
	if err != nil {
		return "", err
	}

	if err := c.cache.Save(ctx, key, doc); err != nil {
		// Cache failures degrade to recomputation, never to request failure.
		c.logger.Warn("failed to cache rendered document", "err", err, "format", format)
	}
	return doc, nil
}

// RenderTopic renders a single entry in the given format.
func (c *Catalog) RenderTopic(name, format string) (string, error) {
	return c.inner.RenderTopic(name, format)
}

// Watch returns a channel that signals when the underlying catalog source changes.
// Returns an error if the loader does not support watching.
func (c *Catalog) Watch(ctx context.Context) (<-chan string, error) {
	if w, ok := c.loader.(ports.Watchable); ok {
		return w.Watch(ctx)
	}
	return nil, fmt.Errorf("current loader does not support watching")
}

// SetMetrics attaches observability collectors after construction.
// Serving adapters that own the Prometheus registry (the HTTP handler) use
// this to wire the cache counters onto their registry. Call before serving.
func (c *Catalog) SetMetrics(m *observability.Metrics) {
	c.metrics = m
}

// Loader returns the underlying CatalogLoader.
func (c *Catalog) Loader() ports.CatalogLoader {
	return c.loader
}
