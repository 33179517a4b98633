package adapters

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"gemlock/internal/ports"
)

type LockfileFileAdapter struct{}

func NewLockfileFileAdapter() LockfileFileAdapter {
	return LockfileFileAdapter{}
}

func (a LockfileFileAdapter) ReadLockfile(path string) ([]byte, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("lockfile path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("lockfile not found: " + path).
				WithCause(err)
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read lockfile: " + path).
			WithCause(err)
	}
	return data, nil
}

var _ ports.LockfileReaderPort = LockfileFileAdapter{}
