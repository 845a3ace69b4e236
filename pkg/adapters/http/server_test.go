package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/rosetta"
	adapter "github.com/aretw0/rosetta/pkg/adapters/http"
	"github.com/aretw0/rosetta/pkg/adapters/memory"
	"github.com/aretw0/rosetta/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	loader, err := memory.NewFromTopics(
		domain.Topic{
			Name:        "slice",
			Title:       "Slicing rows",
			BaseSnippet: []string{"mtcars[1:5, ]"},
			TidySnippet: []string{"mtcars %>% slice(1:5)"},
			Notes:       []domain.Note{{Kind: domain.NoteGotcha, Text: "row names vanish"}},
		},
		domain.Topic{
			Name:        "filter",
			BaseSnippet: []string{"mtcars[mtcars$mpg > 20, ]"},
			TidySnippet: []string{"mtcars %>% filter(mpg > 20)"},
		},
	)
	require.NoError(t, err)

	cat, err := rosetta.New("test", rosetta.WithLoader(loader))
	require.NoError(t, err)

	return adapter.NewHandler(cat)
}

func TestListTopics(t *testing.T) {
	handler := newTestHandler(t)

	req, _ := http.NewRequest("GET", "/topics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var names []string
	err := json.Unmarshal(rr.Body.Bytes(), &names)
	assert.NoError(t, err)
	assert.Equal(t, []string{"slice", "filter"}, names)
}

func TestGetTopic(t *testing.T) {
	handler := newTestHandler(t)

	req, _ := http.NewRequest("GET", "/topics/slice", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var topic domain.Topic
	err := json.Unmarshal(rr.Body.Bytes(), &topic)
	assert.NoError(t, err)
	assert.Equal(t, "slice", topic.Name)
	assert.Equal(t, []string{"mtcars %>% slice(1:5)"}, topic.TidySnippet)
}

func TestGetTopic_NotFound(t *testing.T) {
	handler := newTestHandler(t)

	req, _ := http.NewRequest("GET", "/topics/nonexistent_topic", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRenderCatalog(t *testing.T) {
	handler := newTestHandler(t)

	req, _ := http.NewRequest("GET", "/render?format=plain", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "slice")
	assert.Contains(t, body, "mtcars[mtcars$mpg > 20, ]")

	// Name precedes snippets, snippets precede notes.
	assert.Less(t,
		strings.Index(body, "Slicing rows"),
		strings.Index(body, "mtcars[1:5, ]"))
	assert.Less(t,
		strings.Index(body, "mtcars[1:5, ]"),
		strings.Index(body, "row names vanish"))
}

func TestRenderCatalog_UnknownFormat(t *testing.T) {
	handler := newTestHandler(t)

	req, _ := http.NewRequest("GET", "/render?format=latex", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetHealth(t *testing.T) {
	handler := newTestHandler(t)

	req, _ := http.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "ok", resp["status"])
}

func TestGetInfo(t *testing.T) {
	handler := newTestHandler(t)

	req, _ := http.NewRequest("GET", "/info", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "rosetta-http", resp["app"])
	assert.NotEmpty(t, resp["version"])
	assert.NotEmpty(t, resp["catalog_digest"])
	assert.EqualValues(t, 2, resp["topics"])
}

// watchableLoader wraps the memory loader with a caller-controlled event stream.
type watchableLoader struct {
	*memory.Loader
	events chan string
}

func (l *watchableLoader) Watch(ctx context.Context) (<-chan string, error) {
	return l.events, nil
}

func TestSubscribeEvents_ForwardsChanges(t *testing.T) {
	loader, err := memory.NewFromTopics(domain.Topic{
		Name:        "slice",
		BaseSnippet: []string{"mtcars[1:5, ]"},
		TidySnippet: []string{"mtcars %>% slice(1:5)"},
	})
	require.NoError(t, err)

	wl := &watchableLoader{Loader: loader, events: make(chan string, 1)}
	// Queue one change and close so the stream ends after forwarding it.
	wl.events <- "slice.md"
	close(wl.events)

	cat, err := rosetta.New("test", rosetta.WithLoader(wl))
	require.NoError(t, err)
	handler := adapter.NewHandler(cat)

	req, _ := http.NewRequest("GET", "/events", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))
	body := rr.Body.String()
	assert.Contains(t, body, "event: ping")
	assert.Contains(t, body, "data: connected")
	assert.Contains(t, body, "data: slice.md")
}

func TestMetrics_CacheCounters(t *testing.T) {
	loader, err := memory.NewFromTopics(domain.Topic{
		Name:        "filter",
		BaseSnippet: []string{"mtcars[mtcars$mpg > 20, ]"},
		TidySnippet: []string{"mtcars %>% filter(mpg > 20)"},
	})
	require.NoError(t, err)

	cat, err := rosetta.New("test",
		rosetta.WithLoader(loader),
		rosetta.WithRenderCache(memory.NewCache()),
	)
	require.NoError(t, err)
	handler := adapter.NewHandler(cat)

	// First render computes (miss), second is served from the cache (hit).
	for i := 0; i < 2; i++ {
		req, _ := http.NewRequest("GET", "/render?format=markdown", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	req, _ := http.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	body := rr.Body.String()
	assert.Contains(t, body, "rosetta_render_cache_miss_total 1")
	assert.Contains(t, body, "rosetta_render_cache_hit_total 1")
}

func TestMetricsExposed(t *testing.T) {
	handler := newTestHandler(t)

	// Trigger a render and a lookup miss so the counters move.
	for _, path := range []string{"/render?format=markdown", "/topics/missing"} {
		req, _ := http.NewRequest("GET", path, nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	req, _ := http.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "rosetta_render_total")
	assert.Contains(t, body, "rosetta_lookup_miss_total")
}
