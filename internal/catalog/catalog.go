package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/aretw0/rosetta/pkg/domain"
	"github.com/aretw0/rosetta/pkg/ports"
)

// Catalog is the immutable, ordered collection of topic entries.
// Once built it is a pure value: any number of readers may use it
// concurrently without coordination.
type Catalog struct {
	names  []string
	topics map[string]domain.Topic
	digest string
}

// Build constructs a Catalog by draining the loader.
// It enforces the catalog invariants: unique names, non-empty snippets,
// and authored order (taken verbatim from ListTopics).
func Build(loader ports.CatalogLoader) (*Catalog, error) {
	names, err := loader.ListTopics()
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}

	parser := NewParser()
	topics := make(map[string]domain.Topic, len(names))
	order := make([]string, 0, len(names))

	hash := sha256.New()

	for _, name := range names {
		if _, dup := topics[name]; dup {
			return nil, fmt.Errorf("duplicate topic name: %s", name)
		}

		raw, err := loader.GetTopic(name)
		if err != nil {
			return nil, fmt.Errorf("failed to load topic %s: %w", name, err)
		}

		topic, err := parser.Parse(raw)
		if err != nil {
			return nil, err
		}
		if topic.Name != name {
			return nil, fmt.Errorf("topic name mismatch: listed as %s, defined as %s", name, topic.Name)
		}

		topics[name] = *topic
		order = append(order, name)

		// Digest over the canonical JSON form, in authored order.
		canonical, err := json.Marshal(topic)
		if err != nil {
			return nil, fmt.Errorf("failed to digest topic %s: %w", name, err)
		}
		hash.Write(canonical)
	}

	return &Catalog{
		names:  order,
		topics: topics,
		digest: hex.EncodeToString(hash.Sum(nil)),
	}, nil
}

// FromTopics builds a Catalog directly from domain values, preserving the
// given order. Used by authored in-process catalogs and tests.
func FromTopics(entries ...domain.Topic) (*Catalog, error) {
	topics := make(map[string]domain.Topic, len(entries))
	order := make([]string, 0, len(entries))

	hash := sha256.New()

	for _, t := range entries {
		if err := validateTopic(t); err != nil {
			return nil, err
		}
		if _, dup := topics[t.Name]; dup {
			return nil, fmt.Errorf("duplicate topic name: %s", t.Name)
		}
		topics[t.Name] = t.Clone()
		order = append(order, t.Name)

		canonical, err := json.Marshal(t)
		if err != nil {
			return nil, fmt.Errorf("failed to digest topic %s: %w", t.Name, err)
		}
		hash.Write(canonical)
	}

	return &Catalog{
		names:  order,
		topics: topics,
		digest: hex.EncodeToString(hash.Sum(nil)),
	}, nil
}

// Topics returns the topic names in authored order.
// The returned slice is a copy; callers may not reorder the catalog.
func (c *Catalog) Topics() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Get retrieves a topic by name.
// Returns domain.ErrTopicNotFound when the name is absent.
func (c *Catalog) Get(name string) (domain.Topic, error) {
	topic, ok := c.topics[name]
	if !ok {
		return domain.Topic{}, fmt.Errorf("%w: %s", domain.ErrTopicNotFound, name)
	}
	return topic.Clone(), nil
}

// All returns every topic in authored order.
func (c *Catalog) All() []domain.Topic {
	out := make([]domain.Topic, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.topics[name].Clone())
	}
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Digest returns a stable content digest of the catalog.
// Render caches key on it, so a rebuilt catalog invalidates naturally.
func (c *Catalog) Digest() string {
	return c.digest
}
