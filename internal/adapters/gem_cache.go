package adapters

import (
	"context"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"gemlock/internal/ports"
	"gemlock/internal/shared"
	"gemlock/internal/types"
)

const defaultGemWorkers = 4

type GemCacheAdapter struct {
	// GemBinary is the executable queried for the gem path when no
	// directories are configured.
	GemBinary string
}

func NewGemCacheAdapter() GemCacheAdapter {
	return GemCacheAdapter{GemBinary: "gem"}
}

func (a GemCacheAdapter) GemDirs(ctx context.Context, explicit []string) ([]string, error) {
	var dirs []string
	for _, dir := range explicit {
		for _, part := range filepath.SplitList(dir) {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				dirs = append(dirs, trimmed)
			}
		}
	}
	if len(dirs) > 0 {
		return dirs, nil
	}

	binary := a.GemBinary
	if binary == "" {
		binary = "gem"
	}
	cmd := exec.CommandContext(ctx, binary, "environment", "gempath")
	output, err := cmd.Output()
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("failed to retrieve ruby gem path").
			WithCause(shared.CommandError(output, err))
	}
	dirs = ParseGemPath(string(output))
	if len(dirs) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no gem directories in gem path output %q", strings.TrimSpace(string(output))))
	}
	return dirs, nil
}

// ParseGemPath splits the first line of `gem environment gempath` output and
// keeps the directories that exist.
func ParseGemPath(output string) []string {
	first, _, _ := strings.Cut(strings.TrimSpace(output), "\n")
	var dirs []string
	for _, dir := range filepath.SplitList(strings.TrimSpace(first)) {
		if dir == "" {
			continue
		}
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func (a GemCacheAdapter) Locate(ctx context.Context, gemDirs []string, entries []types.LockEntry, workers int) ([]types.GemArtifact, error) {
	if workers <= 0 {
		workers = defaultGemWorkers
	}
	artifacts := make([]types.GemArtifact, len(entries))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i, entry := range entries {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			artifact, err := locateArtifact(gemDirs, entry)
			if err != nil {
				return err
			}
			artifacts[i] = artifact
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}

func locateArtifact(gemDirs []string, entry types.LockEntry) (types.GemArtifact, error) {
	artifact := types.GemArtifact{Name: entry.Name, Version: entry.Version}
	path := cachedGemPath(gemDirs, entry)
	if path == "" {
		artifact.Missing = true
		return artifact, nil
	}
	sum1, sum256, err := hashFile(path)
	if err != nil {
		return types.GemArtifact{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to hash gem archive " + path).
			WithCause(err)
	}
	artifact.Path = path
	artifact.SHA1 = sum1
	artifact.SHA256 = sum256
	log.Debug().Str("gem", entry.Name).Str("path", path).Msg("located gem archive")
	return artifact, nil
}

func cachedGemPath(gemDirs []string, entry types.LockEntry) string {
	pattern := fmt.Sprintf("%s-%s*.gem", entry.Name, entry.Version)
	for _, dir := range gemDirs {
		matches, err := filepath.Glob(filepath.Join(dir, "cache", pattern))
		if err == nil && len(matches) > 0 {
			return matches[0]
		}
	}
	return ""
}

func hashFile(path string) (string, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", "", err
	}
	defer file.Close()
	h1 := sha1.New()
	h256 := sha256.New()
	if _, err := io.Copy(io.MultiWriter(h1, h256), file); err != nil {
		return "", "", err
	}
	return hex.EncodeToString(h1.Sum(nil)), hex.EncodeToString(h256.Sum(nil)), nil
}

var _ ports.GemCachePort = GemCacheAdapter{}
