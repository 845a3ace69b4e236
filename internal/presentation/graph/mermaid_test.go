package graph

import (
	"strings"
	"testing"

	"github.com/aretw0/rosetta/pkg/domain"
)

func TestGenerateMermaid_ProgressionOrder(t *testing.T) {
	topics := []domain.Topic{
		{Name: "slice", BaseSnippet: []string{"a"}, TidySnippet: []string{"b"}},
		{Name: "select", BaseSnippet: []string{"a"}, TidySnippet: []string{"b"}},
		{Name: "filter-between", BaseSnippet: []string{"a"}, TidySnippet: []string{"b"}},
	}

	out := GenerateMermaid(topics)

	if !strings.HasPrefix(out, "graph TD\n") {
		t.Errorf("expected mermaid header, got %q", out)
	}
	if !strings.Contains(out, "slice --> select") {
		t.Errorf("missing progression arrow slice --> select:\n%s", out)
	}
	// Dashes must be sanitized in IDs.
	if !strings.Contains(out, "select --> filter_between") {
		t.Errorf("missing sanitized arrow select --> filter_between:\n%s", out)
	}
}

func TestGenerateMermaid_GotchaAnnotation(t *testing.T) {
	topics := []domain.Topic{
		{
			Name:        "slice",
			BaseSnippet: []string{"a"},
			TidySnippet: []string{"b"},
			Notes: []domain.Note{
				{Kind: domain.NoteGotcha, Text: "row names"},
				{Kind: domain.NoteObservation, Text: "fine"},
			},
		},
	}

	out := GenerateMermaid(topics)
	if !strings.Contains(out, "1 gotcha(s)") {
		t.Errorf("expected gotcha annotation:\n%s", out)
	}
}
