package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockfileFileAdapterReads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Gemfile.lock")
	require.NoError(t, os.WriteFile(path, []byte("GEM\n"), 0644))

	data, err := NewLockfileFileAdapter().ReadLockfile(path)
	require.NoError(t, err)
	assert.Equal(t, "GEM\n", string(data))
}

func TestLockfileFileAdapterMissingFile(t *testing.T) {
	_, err := NewLockfileFileAdapter().ReadLockfile(filepath.Join(t.TempDir(), "missing.lock"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "lockfile not found")
}

func TestLockfileFileAdapterEmptyPath(t *testing.T) {
	_, err := NewLockfileFileAdapter().ReadLockfile("  ")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestLockfileFileAdapterDirectory(t *testing.T) {
	_, err := NewLockfileFileAdapter().ReadLockfile(t.TempDir())
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
}
