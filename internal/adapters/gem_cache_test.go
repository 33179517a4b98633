package adapters

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gemlock/internal/types"
)

func writeCachedGem(t *testing.T, gemDir string, file string, content string) string {
	t.Helper()
	cache := filepath.Join(gemDir, "cache")
	require.NoError(t, os.MkdirAll(cache, 0755))
	path := filepath.Join(cache, file)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestGemCacheAdapter_Locate(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	railsPath := writeCachedGem(t, first, "rails-7.0.0.gem", "hello")
	nokogiriPath := writeCachedGem(t, second, "nokogiri-1.16.2-x86_64-linux.gem", "hello")

	entries := []types.LockEntry{
		{Name: "rails", Version: "7.0.0"},
		{Name: "nokogiri", Version: "1.16.2"},
		{Name: "rake", Version: "13.1.0"},
	}
	artifacts, err := NewGemCacheAdapter().Locate(t.Context(), []string{first, second}, entries, 2)
	require.NoError(t, err)
	require.Len(t, artifacts, 3)

	assert.Equal(t, "rails", artifacts[0].Name)
	assert.Equal(t, railsPath, artifacts[0].Path)
	assert.Equal(t, "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d", artifacts[0].SHA1)
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", artifacts[0].SHA256)
	assert.False(t, artifacts[0].Missing)

	assert.Equal(t, nokogiriPath, artifacts[1].Path)

	assert.Equal(t, "rake", artifacts[2].Name)
	assert.True(t, artifacts[2].Missing)
	assert.Empty(t, artifacts[2].Path)
}

func TestGemCacheAdapter_LocateEmpty(t *testing.T) {
	artifacts, err := NewGemCacheAdapter().Locate(t.Context(), nil, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, artifacts)
}

func TestGemCacheAdapter_GemDirsExplicit(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()
	dirs, err := NewGemCacheAdapter().GemDirs(t.Context(), []string{a + string(os.PathListSeparator) + b, " "})
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, dirs)
}

func TestGemCacheAdapter_GemDirsCommandFailure(t *testing.T) {
	adapter := GemCacheAdapter{GemBinary: filepath.Join(t.TempDir(), "no-such-gem")}
	_, err := adapter.GemDirs(t.Context(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to retrieve ruby gem path")
}

func TestParseGemPath(t *testing.T) {
	existing := t.TempDir()
	output := strings.Join([]string{existing, "/nonexistent/gems"}, string(os.PathListSeparator)) + "\nignored second line\n"
	assert.Equal(t, []string{existing}, ParseGemPath(output))
	assert.Nil(t, ParseGemPath(""))
}
