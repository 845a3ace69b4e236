// Package mtcars ships the authored Rosetta catalog comparing base R and
// tidyverse (dplyr) idioms over the mtcars sample dataset.
//
// The progression is pedagogical: data-frame basics, column selection,
// row access, type handling, filtering, then ordering. Order matters and is
// preserved by every consumer.
package mtcars

import (
	"github.com/aretw0/rosetta/pkg/adapters/memory"
	"github.com/aretw0/rosetta/pkg/domain"
)

// Loader returns a memory loader seeded with the authored catalog.
func Loader() (*memory.Loader, error) {
	return memory.NewFromTopics(Topics()...)
}

// Topics returns the authored entries in progression order.
func Topics() []domain.Topic {
	return []domain.Topic{
		{
			Name:  "dataframe_basics",
			Title: "Looking at the data frame",
			Prose: "mtcars ships with R: 32 cars, 11 numeric columns, and the car " +
				"model stored as row names rather than a column. Both worlds start " +
				"by inspecting shape and types.",
			BaseSnippet: []string{
				"head(mtcars)",
				"str(mtcars)",
				"dim(mtcars)",
			},
			TidySnippet: []string{
				"library(dplyr)",
				"mtcars %>% as_tibble(rownames = \"model\")",
				"mtcars %>% glimpse()",
			},
			Notes: []domain.Note{
				{Kind: domain.NoteObservation, Text: "A tibble prints only what fits on screen; a data.frame prints everything."},
				{Kind: domain.NoteGotcha, Text: "as_tibble() silently discards row names, so the car models disappear."},
				{Kind: domain.NoteFix, Text: "Pass rownames = \"model\" (or use tibble::rownames_to_column()) to keep them as a real column."},
			},
		},
		{
			Name:  "select",
			Title: "Selecting columns",
			Prose: "Column selection is bracket indexing with a character vector in " +
				"base R, and the select() verb with bare column names in dplyr.",
			BaseSnippet: []string{
				`mtcars[, c("mpg", "cyl")]`,
				`mtcars[, "mpg"]`,
			},
			TidySnippet: []string{
				"mtcars %>% select(mpg, cyl)",
				"mtcars %>% select(mpg)",
			},
			Notes: []domain.Note{
				{Kind: domain.NoteGotcha, Text: "Selecting a single column with [ drops the result to a bare vector (drop = TRUE is the default)."},
				{Kind: domain.NoteFix, Text: "Use mtcars[, \"mpg\", drop = FALSE] to keep a one-column data frame; select() never drops."},
			},
		},
		{
			Name:  "vector_extraction",
			Title: "Extracting a column as a vector",
			Prose: "Sometimes the vector is exactly what you want. $ and [[ are the " +
				"base tools; pull() is the pipe-friendly equivalent.",
			BaseSnippet: []string{
				"mtcars$mpg",
				`mtcars[["mpg"]]`,
			},
			TidySnippet: []string{
				"mtcars %>% pull(mpg)",
			},
			Notes: []domain.Note{
				{Kind: domain.NoteObservation, Text: "$ partial-matches column names (mtcars$m is ambiguous but mtcars$mp returns mpg); [[ and pull() match exactly."},
			},
		},
		{
			Name:  "slice",
			Title: "Slicing rows by position",
			Prose: "Positional row access is bracket indexing in base R and the " +
				"slice() verb in dplyr. Negative indices drop rows in both.",
			BaseSnippet: []string{
				"mtcars[1:5, ]",
				"mtcars[-(1:5), ]",
			},
			TidySnippet: []string{
				"mtcars %>% slice(1:5)",
				"mtcars %>% slice(-(1:5))",
			},
			Notes: []domain.Note{
				{Kind: domain.NoteGotcha, Text: "slice() returns a tibble, and tibbles have no row names: the car models vanish while base indexing keeps them."},
				{Kind: domain.NoteFix, Text: "rownames_to_column(mtcars, \"model\") before piping if the model names matter."},
			},
		},
		{
			Name:  "type_conversion",
			Title: "Converting column types",
			Prose: "Explicit coercion looks similar in both idioms; the traps are in " +
				"the implicit conversions.",
			BaseSnippet: []string{
				"mtcars$cyl <- as.character(mtcars$cyl)",
				"mtcars$cyl <- as.numeric(mtcars$cyl)",
			},
			TidySnippet: []string{
				"mtcars %>% mutate(cyl = as.character(cyl))",
				"mtcars %>% mutate(cyl = as.numeric(cyl))",
			},
			Notes: []domain.Note{
				{Kind: domain.NoteGotcha, Text: "as.numeric() on a factor returns the internal level codes, not the printed labels: as.numeric(factor(c(\"10\",\"20\"))) is 1 2."},
				{Kind: domain.NoteFix, Text: "Go through character first: as.numeric(as.character(f))."},
			},
		},
		{
			Name:  "filter",
			Title: "Filtering rows by predicate",
			Prose: "Logical row indexing versus the filter() verb. Same predicate, " +
				"different NA behavior.",
			BaseSnippet: []string{
				"mtcars[mtcars$mpg > 20, ]",
				"subset(mtcars, mpg > 20)",
			},
			TidySnippet: []string{
				"mtcars %>% filter(mpg > 20)",
			},
			Notes: []domain.Note{
				{Kind: domain.NoteGotcha, Text: "When the predicate evaluates to NA, [ keeps a junk all-NA row; filter() and subset() drop it."},
				{Kind: domain.NoteFix, Text: "In base, write mtcars[which(mtcars$mpg > 20), ] to get filter()'s behavior."},
			},
		},
		{
			Name:  "filter_between",
			Title: "Filtering an inclusive range",
			Prose: "Keeping rows where a value lies within an inclusive numeric " +
				"range: a compound comparison in base R, between() in dplyr.",
			BaseSnippet: []string{
				"mtcars[mtcars$mpg >= 20 & mtcars$mpg <= 25, ]",
			},
			TidySnippet: []string{
				"mtcars %>% filter(between(mpg, 20, 25))",
			},
			Notes: []domain.Note{
				{Kind: domain.NoteObservation, Text: "between(x, left, right) is inclusive on both ends, matching >= and <= exactly."},
				{Kind: domain.NoteGotcha, Text: "Writing 20 <= mpg <= 25 is a syntax error in R; the comparison must be spelled as two clauses joined with &."},
			},
		},
		{
			Name:  "arrange",
			Title: "Ordering rows",
			Prose: "Base R orders by indexing with order(); dplyr has the arrange() " +
				"verb. Descending order is desc() in dplyr and a sign flip (or " +
				"decreasing = TRUE) in base.",
			BaseSnippet: []string{
				"mtcars[order(mtcars$mpg), ]",
				"mtcars[order(-mtcars$mpg), ]",
			},
			TidySnippet: []string{
				"mtcars %>% arrange(mpg)",
				"mtcars %>% arrange(desc(mpg))",
			},
			Notes: []domain.Note{
				{Kind: domain.NoteGotcha, Text: "sort(mtcars$mpg) sorts the vector alone; forgetting order() inside [ reorders nothing and silently recycles."},
			},
		},
		{
			Name:  "arrange_multi",
			Title: "Ordering by multiple keys",
			Prose: "Secondary sort keys are extra arguments to order() and extra " +
				"arguments to arrange().",
			BaseSnippet: []string{
				"mtcars[order(mtcars$cyl, -mtcars$mpg), ]",
			},
			TidySnippet: []string{
				"mtcars %>% arrange(cyl, desc(mpg))",
			},
			Notes: []domain.Note{
				{Kind: domain.NoteObservation, Text: "Both idioms sort stably, so ties keep their original relative order."},
			},
		},
		{
			Name:  "pipe_pitfalls",
			Title: "Common pipe mistakes",
			Prose: "The pipe is sugar for nested calls. The equivalences hold, but " +
				"two habits from base R read as bugs once piped.",
			BaseSnippet: []string{
				"arrange(filter(mtcars, mpg > 20), desc(mpg))",
			},
			TidySnippet: []string{
				"mtcars %>% filter(mpg > 20) %>% arrange(desc(mpg))",
			},
			Notes: []domain.Note{
				{Kind: domain.NoteGotcha, Text: "mtcars %>% filter(mtcars$mpg > 20) re-indexes the original frame, not the piped one; after a preceding filter the rows misalign."},
				{Kind: domain.NoteFix, Text: "Inside dplyr verbs, refer to columns bare: filter(mpg > 20)."},
				{Kind: domain.NoteGotcha, Text: "mtcars %>% head passes the function unapplied in older magrittr styles; write head() with parentheses."},
			},
		},
	}
}
