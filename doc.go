/*
Package rosetta is an immutable catalog engine for paired-idiom
documentation: each topic demonstrates one data-manipulation operation twice,
in a baseline (indexing-based) idiom and a pipe-and-verb idiom, with
annotated caveats about where the two diverge.

The shipped catalog compares base R and tidyverse idioms over the mtcars
sample dataset, but the engine is content-agnostic: topics are opaque text,
never executed.

# Concept

Rosetta separates the catalog value (ordered, read-only topic entries) from
its sources (Loam repositories, in-memory catalogs) and its serving surfaces
(CLI, HTTP, MCP). This hexagonal layout lets the same catalog back a
terminal cheat-sheet, a JSON API, and an AI-agent resource.

# Key Properties

  - Deterministic order: Topics() returns the authored progression, every call.
  - Identity round-trip: Get(name) returns the authored entry unchanged.
  - Pure rendering: RenderAll(format) depends only on content and format,
    which makes rendered documents content-addressable for caching.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/rosetta"
		"github.com/aretw0/rosetta/pkg/adapters/memory"
		"github.com/aretw0/rosetta/pkg/catalogs/mtcars"
	)

	func main() {
		loader, err := memory.NewFromTopics(mtcars.Topics()...)
		if err != nil {
			log.Fatal(err)
		}

		cat, err := rosetta.New("mtcars", rosetta.WithLoader(loader))
		if err != nil {
			log.Fatal(err)
		}

		doc, err := cat.RenderAll(context.Background(), rosetta.FormatMarkdown)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(doc)
	}
*/
package rosetta
