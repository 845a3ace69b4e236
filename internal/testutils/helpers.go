// Package testutils holds shared test bootstrap for file-backed catalogs.
package testutils

import (
	"path/filepath"
	"testing"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"
	"github.com/stretchr/testify/require"
)

// SetupTestRepo initializes an empty Loam repository in a temp directory,
// ready to be seeded with topic files. It returns the repository path and
// handle, and fails the test on any setup error.
func SetupTestRepo(t *testing.T, opts ...loam.Option) (string, core.Repository) {
	t.Helper()

	// Loam expects absolute paths; t.TempDir is normally absolute already,
	// but resolving keeps the helper safe on every platform.
	absPath, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "failed to resolve temp dir")

	repo, err := loam.Init(absPath, opts...)
	require.NoError(t, err, "failed to init catalog repo")

	return absPath, repo
}
