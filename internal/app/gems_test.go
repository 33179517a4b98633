package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gemlock/internal/types"
)

type stubGemCache struct {
	dirs    []string
	missing map[string]bool
	workers int
	entries []types.LockEntry
}

func (s *stubGemCache) GemDirs(_ context.Context, explicit []string) ([]string, error) {
	if len(explicit) > 0 {
		return explicit, nil
	}
	return s.dirs, nil
}

func (s *stubGemCache) Locate(_ context.Context, _ []string, entries []types.LockEntry, workers int) ([]types.GemArtifact, error) {
	s.workers = workers
	s.entries = entries
	artifacts := make([]types.GemArtifact, 0, len(entries))
	for _, entry := range entries {
		artifacts = append(artifacts, types.GemArtifact{
			Name:    entry.Name,
			Version: entry.Version,
			Missing: s.missing[entry.Name],
		})
	}
	return artifacts, nil
}

func TestGemsAppCountsMissing(t *testing.T) {
	cache := &stubGemCache{
		dirs:    []string{"/gems"},
		missing: map[string]bool{"rails": true},
	}
	service := NewService()
	service.GemCache = cache

	result, err := service.Gems(t.Context(), GemsRequest{
		LockfilePath: fixturePath(t, "rails", "Gemfile.lock"),
		Workers:      3,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/gems"}, result.GemDirs)
	assert.Equal(t, 1, result.Missing)
	assert.Equal(t, 3, cache.workers)
	assert.Equal(t, []types.LockEntry{
		{Name: "activesupport", Version: "7.0.0"},
		{Name: "rails", Version: "7.0.0"},
	}, cache.entries)
}

func TestGemsAppWithRealCache(t *testing.T) {
	gemDir := t.TempDir()
	cache := filepath.Join(gemDir, "cache")
	require.NoError(t, os.MkdirAll(cache, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(cache, "rails-7.0.0.gem"), []byte("rails"), 0644))

	result, err := NewService().Gems(t.Context(), GemsRequest{
		LockfilePath: fixturePath(t, "rails", "Gemfile.lock"),
		GemPaths:     []string{gemDir},
	})
	require.NoError(t, err)
	require.Len(t, result.Artifacts, 2)
	assert.True(t, result.Artifacts[0].Missing)
	assert.False(t, result.Artifacts[1].Missing)
	assert.NotEmpty(t, result.Artifacts[1].SHA256)
	assert.Equal(t, 1, result.Missing)
}
