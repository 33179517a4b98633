package ports

import (
	"context"

	"gemlock/internal/types"
)

// GemCachePort maps lock entries to the .gem archives installed locally.
type GemCachePort interface {
	// GemDirs returns the gem installation directories to search. Explicit
	// directories are returned as-is; otherwise they are discovered.
	GemDirs(ctx context.Context, explicit []string) ([]string, error)

	// Locate finds and hashes the archive of every entry. Entries without an
	// archive are returned with Missing set.
	Locate(ctx context.Context, gemDirs []string, entries []types.LockEntry, workers int) ([]types.GemArtifact, error)
}
