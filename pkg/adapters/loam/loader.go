package loam

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/loam"
	"github.com/aretw0/rosetta/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// Loader adapts the Loam library to the Rosetta CatalogLoader interface.
// Topics are markdown files: frontmatter holds the paired snippets and notes,
// the body holds the prose.
type Loader struct {
	Repo *loam.TypedRepository[TopicMetadata]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[TopicMetadata]) *Loader {
	return &Loader{
		Repo: repo,
	}
}

// GetTopic retrieves a topic from the Loam repository using the direct Service API.
// We trust Loam to find the file (e.g. slice.md) even if we ask for "slice".
func (l *Loader) GetTopic(name string) ([]byte, error) {
	ctx := context.Background()

	doc, err := l.Repo.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s (%v)", domain.ErrTopicNotFound, name, err)
	}

	topic, err := buildTopic(doc.ID, doc.Data, doc.Content)
	if err != nil {
		return nil, err
	}

	bytes, err := json.Marshal(topic)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal topic %s: %w", name, err)
	}
	return bytes, nil
}

// ListTopics lists all topics in the repository, ordered by the frontmatter
// `order` key (ties break on name so the progression stays deterministic).
func (l *Loader) ListTopics() ([]string, error) {
	ctx := context.Background()
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	type listed struct {
		name  string
		order int
	}

	seen := make(map[string]string)
	entries := make([]listed, 0, len(docs))

	for _, doc := range docs {
		// Use the name from metadata if available, otherwise filename ID
		rawName := doc.Data.Name
		if rawName == "" {
			rawName = doc.ID
		}
		name := trimExtension(rawName)

		// Collision Detection
		if existingPath, ok := seen[name]; ok {
			return nil, fmt.Errorf("collision detected: topic '%s' is defined in both '%s' and '%s'", name, existingPath, doc.ID)
		}
		seen[name] = doc.ID
		entries = append(entries, listed{name: name, order: doc.Data.Order})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].order != entries[j].order {
			return entries[i].order < entries[j].order
		}
		return entries[i].name < entries[j].name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names, nil
}

// Watch implements ports.Watchable.
func (l *Loader) Watch(ctx context.Context) (<-chan string, error) {
	events, err := l.Repo.Watch(ctx, "**/*.{md,yaml,yml}")
	if err != nil {
		return nil, fmt.Errorf("failed to start loam watcher: %w", err)
	}

	ch := make(chan string, 1)

	go func() {
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-events:
				if !ok {
					return
				}
				select {
				case ch <- evt.ID:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}

// buildTopic assembles a domain.Topic from the loam document parts.
func buildTopic(docID string, meta TopicMetadata, content string) (*domain.Topic, error) {
	name := meta.Name
	if name == "" {
		name = docID
	}

	notes, err := resolveNotes(meta.Notes)
	if err != nil {
		return nil, fmt.Errorf("topic %s: %w", name, err)
	}

	return &domain.Topic{
		Name:        trimExtension(name),
		Title:       meta.Title,
		Prose:       strings.TrimSpace(content),
		BaseSnippet: meta.Base,
		TidySnippet: meta.Tidy,
		Notes:       notes,
	}, nil
}

// resolveNotes decodes polymorphic note definitions: bare strings become
// observations, maps are decoded as {kind, text}.
func resolveNotes(raw []any) ([]domain.Note, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	notes := make([]domain.Note, 0, len(raw))
	for _, item := range raw {
		switch v := item.(type) {
		case string:
			notes = append(notes, domain.Note{Kind: domain.NoteObservation, Text: v})

		case map[string]any, map[any]any:
			var entry noteEntry
			if err := mapstructure.Decode(v, &entry); err != nil {
				return nil, fmt.Errorf("failed to decode note: %w", err)
			}
			if entry.Text == "" {
				return nil, fmt.Errorf("note missing text")
			}
			if entry.Kind == "" {
				entry.Kind = domain.NoteObservation
			}
			notes = append(notes, domain.Note{Kind: entry.Kind, Text: entry.Text})

		default:
			return nil, fmt.Errorf("invalid note definition type: %T", v)
		}
	}
	return notes, nil
}

func trimExtension(name string) string {
	ext := filepath.Ext(name)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(name, ext))
	}
	return filepath.ToSlash(name)
}
