package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/rosetta/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of the catalog progression:
// one node per topic, linked in authored order. Topics carrying gotcha notes
// are annotated so a reader can spot the tricky steps at a glance.
func GenerateMermaid(topics []domain.Topic) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, t := range topics {
		safeID := sanitizeMermaidID(t.Name)

		label := t.DisplayTitle()
		if n := gotchaCount(t); n > 0 {
			label = fmt.Sprintf("%s <br/> ⚠ %d gotcha(s)", label, n)
		}
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", safeID, label))
	}

	// Progression arrows
	for i := 1; i < len(topics); i++ {
		from := sanitizeMermaidID(topics[i-1].Name)
		to := sanitizeMermaidID(topics[i].Name)
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", from, to))
	}

	return sb.String()
}

func gotchaCount(t domain.Topic) int {
	n := 0
	for _, note := range t.Notes {
		if note.Kind == domain.NoteGotcha {
			n++
		}
	}
	return n
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
