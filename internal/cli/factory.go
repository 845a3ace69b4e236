package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/rosetta"
	"github.com/aretw0/rosetta/pkg/adapters/redis"
	"github.com/aretw0/rosetta/pkg/catalogs/mtcars"
)

// CreateCatalog initializes a Rosetta catalog with standard CLI conventions.
// Without a repository path it falls back to the built-in mtcars catalog, so
// the CLI is usable out of the box.
func CreateCatalog(opts Options, logger *slog.Logger) (*rosetta.Catalog, error) {
	catOpts := []rosetta.Option{
		rosetta.WithLogger(logger),
	}

	if opts.RedisURL != "" {
		cache, err := redis.NewFromURL(opts.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("error connecting render cache: %w", err)
		}
		catOpts = append(catOpts, rosetta.WithRenderCache(cache))
	}

	repoPath := opts.RepoPath
	if opts.Builtin || repoPath == "" {
		loader, err := mtcars.Loader()
		if err != nil {
			return nil, fmt.Errorf("error loading built-in catalog: %w", err)
		}
		catOpts = append(catOpts, rosetta.WithLoader(loader))
		repoPath = "mtcars"
	}

	cat, err := rosetta.New(repoPath, catOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing catalog: %w", err)
	}

	return cat, nil
}
