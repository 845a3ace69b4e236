package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/rosetta/pkg/domain"
)

// Supported document formats.
const (
	// FormatPlain renders an indented plain-text document.
	FormatPlain = "plain"
	// FormatMarkdown renders a markdown document (fenced code blocks per idiom).
	FormatMarkdown = "markdown"
)

// ErrUnknownFormat is returned when RenderAll receives an unrecognized format.
var ErrUnknownFormat = errors.New("unknown render format")

// Formats returns the recognized format names.
func Formats() []string {
	return []string{FormatPlain, FormatMarkdown}
}

// rendererFor resolves a format name to its entry renderer.
// Resolution happens before any traversal so an unknown format is rejected
// regardless of catalog content.
func rendererFor(format string) (func(*strings.Builder, domain.Topic), error) {
	switch format {
	case FormatPlain:
		return renderPlain, nil
	case FormatMarkdown:
		return renderMarkdown, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// RenderAll produces the full document: every entry's title, both snippets,
// and notes, concatenated in catalog order. Pure function of catalog content
// and format.
func (c *Catalog) RenderAll(format string) (string, error) {
	render, err := rendererFor(format)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, name := range c.names {
		render(&b, c.topics[name])
	}
	return b.String(), nil
}

// RenderTopic renders a single entry in the given format.
// The format is validated first: a request that is wrong on both counts
// reports the format error, not the lookup miss.
func (c *Catalog) RenderTopic(name, format string) (string, error) {
	render, err := rendererFor(format)
	if err != nil {
		return "", err
	}

	topic, err := c.Get(name)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	render(&b, topic)
	return b.String(), nil
}

func renderPlain(b *strings.Builder, t domain.Topic) {
	fmt.Fprintf(b, "=== %s [%s] ===\n", t.DisplayTitle(), t.Name)
	if t.Prose != "" {
		fmt.Fprintf(b, "%s\n", strings.TrimSpace(t.Prose))
	}

	b.WriteString("\nbase:\n")
	for _, stmt := range t.BaseSnippet {
		fmt.Fprintf(b, "    %s\n", stmt)
	}
	b.WriteString("tidy:\n")
	for _, stmt := range t.TidySnippet {
		fmt.Fprintf(b, "    %s\n", stmt)
	}

	if len(t.Notes) > 0 {
		b.WriteString("notes:\n")
		for _, n := range t.Notes {
			kind := n.Kind
			if kind == "" {
				kind = domain.NoteObservation
			}
			fmt.Fprintf(b, "  [%s] %s\n", kind, n.Text)
		}
	}
	b.WriteString("\n")
}

func renderMarkdown(b *strings.Builder, t domain.Topic) {
	if t.Title != "" {
		fmt.Fprintf(b, "## %s (`%s`)\n\n", t.Title, t.Name)
	} else {
		fmt.Fprintf(b, "## `%s`\n\n", t.Name)
	}
	if t.Prose != "" {
		fmt.Fprintf(b, "%s\n\n", strings.TrimSpace(t.Prose))
	}

	b.WriteString("**Base**\n\n```r\n")
	for _, stmt := range t.BaseSnippet {
		fmt.Fprintf(b, "%s\n", stmt)
	}
	b.WriteString("```\n\n**Tidy**\n\n```r\n")
	for _, stmt := range t.TidySnippet {
		fmt.Fprintf(b, "%s\n", stmt)
	}
	b.WriteString("```\n")

	if len(t.Notes) > 0 {
		b.WriteString("\n")
		for _, n := range t.Notes {
			kind := n.Kind
			if kind == "" {
				kind = domain.NoteObservation
			}
			fmt.Fprintf(b, "- **%s**: %s\n", kind, n.Text)
		}
	}
	b.WriteString("\n")
}
