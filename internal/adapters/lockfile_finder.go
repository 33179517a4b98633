package adapters

import (
	"io/fs"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"gemlock/internal/ports"
)

var lockfileNames = map[string]struct{}{
	"Gemfile.lock": {},
	"gems.locked":  {},
}

type LockfileFinderAdapter struct{}

func NewLockfileFinderAdapter() LockfileFinderAdapter {
	return LockfileFinderAdapter{}
}

func (a LockfileFinderAdapter) FindLockfiles(root string) ([]string, error) {
	var paths []string
	if root == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("search root is empty")
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && shouldSkipLockfileDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if IsLockfileName(d.Name()) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan for lockfiles").
			WithCause(err)
	}
	return paths, nil
}

// IsLockfileName reports whether name is a Bundler lockfile name.
func IsLockfileName(name string) bool {
	_, ok := lockfileNames[name]
	return ok
}

func shouldSkipLockfileDir(name string) bool {
	switch name {
	case ".git", ".bundle", "vendor", "node_modules", "tmp":
		return true
	default:
		return false
	}
}

var _ ports.LockfileFinderPort = LockfileFinderAdapter{}
