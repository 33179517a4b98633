// Package testutil provides shared test helpers used across integration
// and e2e test packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the absolute path to the directory holding go.mod,
// walking up from the current working directory.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		require.NotEqual(t, dir, parent, "go.mod not found above working directory")
		dir = parent
	}
}

// Fixture returns the path of a lockfile fixture under fixtures/<name>.
func Fixture(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(RepoRoot(t), "fixtures", name, "Gemfile.lock")
	require.FileExists(t, path)
	return path
}
