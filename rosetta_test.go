package rosetta_test

import (
	"context"
	"testing"

	"github.com/aretw0/rosetta"
	"github.com/aretw0/rosetta/pkg/adapters/memory"
	"github.com/aretw0/rosetta/pkg/domain"
	"github.com/aretw0/rosetta/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTopics() []domain.Topic {
	return []domain.Topic{
		{Name: "slice", BaseSnippet: []string{"mtcars[1:5, ]"}, TidySnippet: []string{"mtcars %>% slice(1:5)"}},
		{Name: "select", BaseSnippet: []string{`mtcars[, "mpg"]`}, TidySnippet: []string{"mtcars %>% select(mpg)"}},
		{Name: "filter", BaseSnippet: []string{"mtcars[mtcars$mpg > 20, ]"}, TidySnippet: []string{"mtcars %>% filter(mpg > 20)"}},
		{Name: "arrange", BaseSnippet: []string{"mtcars[order(mtcars$mpg), ]"}, TidySnippet: []string{"mtcars %>% arrange(mpg)"}},
	}
}

func newTestCatalog(t *testing.T, opts ...rosetta.Option) *rosetta.Catalog {
	t.Helper()
	loader, err := memory.NewFromTopics(testTopics()...)
	require.NoError(t, err)

	cat, err := rosetta.New("test", append([]rosetta.Option{rosetta.WithLoader(loader)}, opts...)...)
	require.NoError(t, err)
	return cat
}

func TestNew_RequiresPathOrLoader(t *testing.T) {
	_, err := rosetta.New("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "repoPath is required")
}

func TestCatalog_TopicsOrder(t *testing.T) {
	cat := newTestCatalog(t)
	assert.Equal(t, []string{"slice", "select", "filter", "arrange"}, cat.Topics())
}

func TestCatalog_GetNotFound(t *testing.T) {
	cat := newTestCatalog(t)
	_, err := cat.Get("nonexistent_topic")
	assert.ErrorIs(t, err, domain.ErrTopicNotFound)
}

func TestCatalog_RenderAll_UsesCache(t *testing.T) {
	cache := memory.NewCache()
	cat := newTestCatalog(t, rosetta.WithRenderCache(cache))
	ctx := context.Background()

	first, err := cat.RenderAll(ctx, rosetta.FormatMarkdown)
	require.NoError(t, err)

	// Second render must hit the cache and return the identical document.
	second, err := cat.RenderAll(ctx, rosetta.FormatMarkdown)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// The cached entry is keyed on format and digest.
	key := rosetta.FormatMarkdown + ":" + cat.Digest()
	cached, err := cache.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, first, cached)
}

func TestCatalog_RenderAll_ReportsCacheMetrics(t *testing.T) {
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	cat := newTestCatalog(t,
		rosetta.WithRenderCache(memory.NewCache()),
		rosetta.WithMetrics(metrics),
	)
	ctx := context.Background()

	// First render computes (miss), second is served from the cache (hit).
	_, err := cat.RenderAll(ctx, rosetta.FormatMarkdown)
	require.NoError(t, err)
	_, err = cat.RenderAll(ctx, rosetta.FormatMarkdown)
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CacheMissTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CacheHitTotal))
}

func TestCatalog_WatchUnsupported(t *testing.T) {
	cat := newTestCatalog(t)
	_, err := cat.Watch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support watching")
}

// watchableLoader wraps the memory loader with a caller-controlled event stream.
type watchableLoader struct {
	*memory.Loader
	events chan string
}

func (l *watchableLoader) Watch(ctx context.Context) (<-chan string, error) {
	return l.events, nil
}

func TestCatalog_Watch_ForwardsEvents(t *testing.T) {
	loader, err := memory.NewFromTopics(testTopics()...)
	require.NoError(t, err)
	wl := &watchableLoader{Loader: loader, events: make(chan string, 1)}

	cat, err := rosetta.New("test", rosetta.WithLoader(wl))
	require.NoError(t, err)

	ch, err := cat.Watch(context.Background())
	require.NoError(t, err)

	wl.events <- "filter.md"
	assert.Equal(t, "filter.md", <-ch)
}
