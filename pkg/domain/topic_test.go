package domain_test

import (
	"testing"

	"github.com/aretw0/rosetta/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestTopic_DisplayTitle(t *testing.T) {
	topic := domain.Topic{Name: "slice"}
	assert.Equal(t, "slice", topic.DisplayTitle())

	topic.Title = "Slicing rows"
	assert.Equal(t, "Slicing rows", topic.DisplayTitle())
}

func TestTopic_Clone_Isolation(t *testing.T) {
	orig := domain.Topic{
		Name:        "filter",
		BaseSnippet: []string{"mtcars[mtcars$mpg > 20, ]"},
		TidySnippet: []string{"mtcars %>% filter(mpg > 20)"},
		Notes:       []domain.Note{{Kind: domain.NoteObservation, Text: "same rows"}},
	}

	clone := orig.Clone()
	clone.BaseSnippet[0] = "mutated"
	clone.Notes[0].Text = "mutated"

	assert.Equal(t, "mtcars[mtcars$mpg > 20, ]", orig.BaseSnippet[0])
	assert.Equal(t, "same rows", orig.Notes[0].Text)
}
