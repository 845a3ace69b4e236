package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/rosetta/pkg/domain"
)

// Parser is responsible for converting raw bytes into a Topic.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse takes the raw content and tries to decode it into a Topic.
// Loaders hand the catalog JSON regardless of their source format.
func (p *Parser) Parse(data []byte) (*domain.Topic, error) {
	var topic domain.Topic
	if err := json.Unmarshal(data, &topic); err != nil {
		return nil, fmt.Errorf("failed to parse topic: %w", err)
	}
	if err := validateTopic(topic); err != nil {
		return nil, err
	}
	return &topic, nil
}

// validateTopic enforces the per-entry invariants: a name, and exactly one
// non-empty snippet per idiom.
func validateTopic(t domain.Topic) error {
	if t.Name == "" {
		return fmt.Errorf("topic missing name")
	}
	if len(t.BaseSnippet) == 0 {
		return fmt.Errorf("topic %s: base snippet is empty", t.Name)
	}
	if len(t.TidySnippet) == 0 {
		return fmt.Errorf("topic %s: tidy snippet is empty", t.Name)
	}
	for i, s := range t.BaseSnippet {
		if s == "" {
			return fmt.Errorf("topic %s: base snippet statement %d is empty", t.Name, i)
		}
	}
	for i, s := range t.TidySnippet {
		if s == "" {
			return fmt.Errorf("topic %s: tidy snippet statement %d is empty", t.Name, i)
		}
	}
	for i, n := range t.Notes {
		switch n.Kind {
		case domain.NoteObservation, domain.NoteGotcha, domain.NoteFix, "":
		default:
			return fmt.Errorf("topic %s: note %d has unknown kind %q", t.Name, i, n.Kind)
		}
		if n.Text == "" {
			return fmt.Errorf("topic %s: note %d has no text", t.Name, i)
		}
	}
	return nil
}
