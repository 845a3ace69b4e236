package cli

// Options contains the shared configuration for the CLI commands.
type Options struct {
	RepoPath string // Loam repository with topic markdown files
	Builtin  bool   // Use the built-in mtcars catalog instead of a repository
	Format   string // Render format: plain or markdown
	Debug    bool
	Watch    bool
	RedisURL string // Optional render cache backend
	Addr     string // Listen address for serve mode
	Plain    bool   // Disable terminal styling even when interactive
}
