package loam

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"

	"github.com/aretw0/rosetta/internal/testutils"
	"github.com/aretw0/rosetta/pkg/domain"
	"github.com/aretw0/rosetta/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func seedTopicFiles(t *testing.T, repo core.Repository) {
	t.Helper()
	ctx := context.Background()

	docs := []core.Document{
		{
			ID: "slice.md",
			Content: `---
name: slice
title: Slicing rows
order: 1
base:
  - "mtcars[1:5, ]"
tidy:
  - "mtcars %>% slice(1:5)"
notes:
  - kind: gotcha
    text: slice() drops row names
---
Take the first five rows.`,
		},
		{
			ID: "filter.md",
			Content: `---
name: filter
order: 2
base:
  - "mtcars[mtcars$mpg > 20, ]"
tidy:
  - "mtcars %>% filter(mpg > 20)"
notes:
  - base indexing keeps NA rows
---
Keep rows matching a predicate.`,
		},
	}

	for _, doc := range docs {
		require.NoError(t, repo.Save(ctx, doc))
	}
}

func TestLoader_Contract(t *testing.T) {
	_, repo := testutils.SetupTestRepo(t)
	seedTopicFiles(t, repo)

	sliceJSON, _ := json.Marshal(domain.Topic{
		Name:        "slice",
		Title:       "Slicing rows",
		Prose:       "Take the first five rows.",
		BaseSnippet: []string{"mtcars[1:5, ]"},
		TidySnippet: []string{"mtcars %>% slice(1:5)"},
		Notes:       []domain.Note{{Kind: domain.NoteGotcha, Text: "slice() drops row names"}},
	})
	filterJSON, _ := json.Marshal(domain.Topic{
		Name:        "filter",
		Prose:       "Keep rows matching a predicate.",
		BaseSnippet: []string{"mtcars[mtcars$mpg > 20, ]"},
		TidySnippet: []string{"mtcars %>% filter(mpg > 20)"},
		Notes:       []domain.Note{{Kind: domain.NoteObservation, Text: "base indexing keeps NA rows"}},
	})

	setupData := map[string][]byte{
		"slice":  sliceJSON,
		"filter": filterJSON,
	}

	typedRepo := loam.NewTypedRepository[TopicMetadata](repo)
	loader := New(typedRepo)

	tests.CatalogLoaderContractTest(t, loader, setupData, []string{"slice", "filter"})
}

func TestLoader_ListTopics_OrdersByFrontmatter(t *testing.T) {
	_, repo := testutils.SetupTestRepo(t)
	ctx := context.Background()

	// Alphabetical order differs from authored order on purpose.
	seed := []TopicMetadata{
		{Name: "arrange", Order: 3, Base: []string{"mtcars[order(mtcars$mpg), ]"}, Tidy: []string{"mtcars %>% arrange(mpg)"}},
		{Name: "zselect", Order: 1, Base: []string{"mtcars[, 1]"}, Tidy: []string{"mtcars %>% select(1)"}},
		{Name: "basics", Order: 2, Base: []string{"head(mtcars)"}, Tidy: []string{"mtcars %>% glimpse()"}},
	}
	for _, meta := range seed {
		fm, err := yaml.Marshal(meta)
		require.NoError(t, err)
		doc := core.Document{ID: meta.Name + ".md", Content: "---\n" + string(fm) + "---\n"}
		require.NoError(t, repo.Save(ctx, doc))
	}

	typedRepo := loam.NewTypedRepository[TopicMetadata](repo)
	loader := New(typedRepo)

	names, err := loader.ListTopics()
	require.NoError(t, err)
	assert.Equal(t, []string{"zselect", "basics", "arrange"}, names)
}

func TestResolveNotes_Polymorphic(t *testing.T) {
	notes, err := resolveNotes([]any{
		"plain string becomes an observation",
		map[string]any{"kind": "fix", "text": "use between()"},
	})
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, domain.NoteObservation, notes[0].Kind)
	assert.Equal(t, domain.NoteFix, notes[1].Kind)

	_, err = resolveNotes([]any{42})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid note definition type")

	_, err = resolveNotes([]any{map[string]any{"kind": "gotcha"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "note missing text")
}
