package domain

// NoteKind constants classify caveat notes attached to a topic.
const (
	// NoteObservation records a neutral behavioral observation.
	NoteObservation = "observation"
	// NoteGotcha flags a divergence or common mistake between the idioms.
	NoteGotcha = "gotcha"
	// NoteFix shows the corrected form for a preceding gotcha.
	NoteFix = "fix"
)

// Note is an annotated caveat explaining behavioral divergence between the
// paired snippets, or a common user error with one of them.
type Note struct {
	Kind string `json:"kind" yaml:"kind"` // e.g., "observation", "gotcha", "fix"
	Text string `json:"text" yaml:"text"`
}

// Topic is one paired demonstration of the baseline vs. the alternative idiom
// for a single data-manipulation operation.
//
// Snippets are opaque text, never executed. The catalog asserts equivalence
// editorially (both fragments produce the same result over the sample
// dataset); Rosetta itself carries no dataframe runtime.
type Topic struct {
	// Name uniquely identifies the topic within its catalog (e.g. "slice").
	Name string `json:"name" yaml:"name"`

	// Title is the human-readable heading. Defaults to Name when empty.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Prose holds the explanatory text shown before the snippets.
	Prose string `json:"prose,omitempty" yaml:"prose,omitempty"`

	// BaseSnippet holds the statements of the baseline (indexing-based) idiom.
	BaseSnippet []string `json:"base_snippet" yaml:"base_snippet"`

	// TidySnippet holds the statements of the pipe-and-verb idiom.
	TidySnippet []string `json:"tidy_snippet" yaml:"tidy_snippet"`

	// Notes are ordered caveats. Order is authored and preserved on output.
	Notes []Note `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// DisplayTitle returns Title, falling back to Name.
func (t Topic) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	return t.Name
}

// Clone returns a deep copy so callers can hand topics out of an immutable
// catalog without sharing slice backing arrays.
func (t Topic) Clone() Topic {
	out := t
	out.BaseSnippet = append([]string(nil), t.BaseSnippet...)
	out.TidySnippet = append([]string(nil), t.TidySnippet...)
	out.Notes = append([]Note(nil), t.Notes...)
	return out
}
