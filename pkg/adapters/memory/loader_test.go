package memory_test

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/rosetta/pkg/adapters/memory"
	"github.com/aretw0/rosetta/pkg/domain"
	"github.com/aretw0/rosetta/pkg/ports/tests"
)

func TestMemoryLoader_Contract(t *testing.T) {
	topics := []domain.Topic{
		{Name: "slice", BaseSnippet: []string{"mtcars[1:5, ]"}, TidySnippet: []string{"mtcars %>% slice(1:5)"}},
		{Name: "select", BaseSnippet: []string{`mtcars[, "mpg"]`}, TidySnippet: []string{"mtcars %>% select(mpg)"}},
		{Name: "filter", BaseSnippet: []string{"mtcars[mtcars$mpg > 20, ]"}, TidySnippet: []string{"mtcars %>% filter(mpg > 20)"}},
	}

	loader, err := memory.NewFromTopics(topics...)
	if err != nil {
		t.Fatalf("failed to build loader: %v", err)
	}

	setupData := make(map[string][]byte)
	order := make([]string, 0, len(topics))
	for _, topic := range topics {
		raw, _ := json.Marshal(topic)
		setupData[topic.Name] = raw
		order = append(order, topic.Name)
	}

	tests.CatalogLoaderContractTest(t, loader, setupData, order)
}

func TestMemoryLoader_RejectsDuplicates(t *testing.T) {
	_, err := memory.NewFromTopics(
		domain.Topic{Name: "slice", BaseSnippet: []string{"a"}, TidySnippet: []string{"b"}},
		domain.Topic{Name: "slice", BaseSnippet: []string{"c"}, TidySnippet: []string{"d"}},
	)
	if err == nil {
		t.Fatal("expected duplicate name error, got nil")
	}
}

func TestMemoryCache_Contract(t *testing.T) {
	tests.RenderCacheContractTest(t, memory.NewCache())
}
