// Package http exposes a Rosetta catalog as a read-only JSON API with
// Prometheus metrics and an SSE hot-reload stream.
package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/aretw0/rosetta"
	"github.com/aretw0/rosetta/pkg/domain"
	"github.com/aretw0/rosetta/pkg/observability"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed openapi.yaml
var openapiSpec []byte

// Engine defines the interface for the Rosetta catalog core.
type Engine interface {
	Topics() []string
	Get(name string) (domain.Topic, error)
	RenderAll(ctx context.Context, format string) (string, error)
	Digest() string
	Len() int
	Watch(ctx context.Context) (<-chan string, error)
}

// Server holds the catalog engine and its collectors.
type Server struct {
	Engine  Engine
	Metrics *observability.Metrics
}

// NewHandler creates a new HTTP handler for the engine.
// The embedded OpenAPI document is validated once at construction; a broken
// spec is a programming error and panics early rather than serving garbage.
func NewHandler(engine Engine) http.Handler {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiSpec)
	if err != nil {
		panic(fmt.Sprintf("embedded openapi spec is unreadable: %v", err))
	}
	if err := doc.Validate(loader.Context); err != nil {
		panic(fmt.Sprintf("embedded openapi spec is invalid: %v", err))
	}

	reg := prometheus.NewRegistry()
	server := &Server{
		Engine:  engine,
		Metrics: observability.NewMetrics(reg),
	}

	// Engines that cache renders report hits and misses on this registry.
	if hooked, ok := engine.(interface {
		SetMetrics(*observability.Metrics)
	}); ok {
		hooked.SetMetrics(server.Metrics)
	}

	r := chi.NewRouter()

	r.Get("/topics", server.ListTopics)
	r.Get("/topics/{name}", server.GetTopic)
	r.Get("/render", server.RenderCatalog)
	r.Get("/events", server.SubscribeEvents)
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(openapiSpec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Rosetta API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// ListTopics handles the GET /topics request.
func (s *Server) ListTopics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.Engine.Topics()); err != nil {
		slog.Error("ListTopics response encode failed", "error", err)
	}
}

// GetTopic handles the GET /topics/{name} request.
func (s *Server) GetTopic(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	topic, err := s.Engine.Get(name)
	if err != nil {
		if errors.Is(err, domain.ErrTopicNotFound) {
			s.Metrics.LookupMissTotal.Inc()
			http.Error(w, fmt.Sprintf("topic not found: %s", name), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("lookup error: %v", err), http.StatusInternalServerError)
		slog.Error("GetTopic failed", "error", err, "topic", name)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(topic); err != nil {
		slog.Error("GetTopic response encode failed", "error", err)
	}
}

// RenderCatalog handles the GET /render request.
func (s *Server) RenderCatalog(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = rosetta.FormatMarkdown
	}

	doc, err := s.Engine.RenderAll(r.Context(), format)
	if err != nil {
		if errors.Is(err, rosetta.ErrUnknownFormat) {
			http.Error(w, fmt.Sprintf("unknown format: %s", format), http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("render error: %v", err), http.StatusInternalServerError)
		slog.Error("RenderCatalog failed", "error", err, "format", format)
		return
	}

	s.Metrics.RenderTotal.WithLabelValues(format).Inc()

	contentType := "text/plain; charset=utf-8"
	if format == rosetta.FormatMarkdown {
		contentType = "text/markdown; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	w.Write([]byte(doc))
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok"}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"app":     "rosetta-http",
		"version": rosetta.Version,
	}
	if s.Engine != nil {
		resp["catalog_digest"] = s.Engine.Digest()
		resp["topics"] = s.Engine.Len()
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// SubscribeEvents handles the GET /events request (SSE).
// Each event carries the identifier of the changed source file; clients
// re-fetch the catalog on receipt.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		slog.Error("SubscribeEvents: Streaming not supported")
		return
	}

	events, err := s.Engine.Watch(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Watch error: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			slog.Info("SSE client disconnected")
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", event)
			flusher.Flush()
		}
	}
}

func init() {
	// Configure default slog to output JSON to stderr
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)
}
