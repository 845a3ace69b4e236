package loam

// TopicMetadata represents the frontmatter of a Rosetta topic file.
// It uses "mapstructure" tags to match standard Frontmatter/YAML keys.
//
// The prose lives in the document body; base and tidy snippets and the
// caveat notes live in the frontmatter so the file stays readable as plain
// markdown.
type TopicMetadata struct {
	Name  string `json:"name" mapstructure:"name"`
	Title string `json:"title" mapstructure:"title"`

	// Order positions the topic within the catalog progression.
	// Lower comes first; ties break on name for determinism.
	Order int `json:"order" mapstructure:"order"`

	// Base and Tidy hold the paired snippet statements.
	Base []string `json:"base" mapstructure:"base"`
	Tidy []string `json:"tidy" mapstructure:"tidy"`

	// Notes are polymorphic: either a bare string (treated as an
	// observation) or a {kind, text} map.
	Notes []any `json:"notes" mapstructure:"notes"`
}

// noteEntry is the explicit map form of a frontmatter note.
type noteEntry struct {
	Kind string `mapstructure:"kind"`
	Text string `mapstructure:"text"`
}
