package memory

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/rosetta/pkg/domain"
)

// Loader implements ports.CatalogLoader using an in-memory map.
// Unlike file-backed loaders, the authored order is given explicitly and
// preserved verbatim: catalog order is pedagogical, never alphabetical.
type Loader struct {
	order  []string
	topics map[string][]byte
}

// NewLoader creates a new memory loader with the provided raw data
// (JSON strings) in the given order.
func NewLoader(order []string, data map[string]string) *Loader {
	topics := make(map[string][]byte, len(data))
	for k, v := range data {
		topics[k] = []byte(v)
	}
	return &Loader{
		order:  append([]string(nil), order...),
		topics: topics,
	}
}

// NewFromTopics creates a memory loader from domain values, preserving the
// argument order. This handles serialization automatically, improving DX for
// authored catalogs and tests.
func NewFromTopics(topics ...domain.Topic) (*Loader, error) {
	order := make([]string, 0, len(topics))
	data := make(map[string][]byte, len(topics))
	for _, t := range topics {
		if t.Name == "" {
			return nil, fmt.Errorf("topic missing name")
		}
		if _, dup := data[t.Name]; dup {
			return nil, fmt.Errorf("duplicate topic name: %s", t.Name)
		}
		raw, err := json.Marshal(t)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal topic %s: %w", t.Name, err)
		}
		data[t.Name] = raw
		order = append(order, t.Name)
	}
	return &Loader{order: order, topics: data}, nil
}

// GetTopic retrieves the raw definition of a topic by name.
func (l *Loader) GetTopic(name string) ([]byte, error) {
	content, ok := l.topics[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTopicNotFound, name)
	}
	return content, nil
}

// ListTopics returns all topic names in authored order.
func (l *Loader) ListTopics() ([]string, error) {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out, nil
}
