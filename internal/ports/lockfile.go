package ports

import "gemlock/internal/types"

// LockfileReaderPort loads the raw contents of a lockfile.
type LockfileReaderPort interface {
	ReadLockfile(path string) ([]byte, error)
}

// LockfileParserPort turns raw Bundler lockfile text into its typed form.
type LockfileParserPort interface {
	Parse(content []byte) (types.ParsedLockfile, error)
}

// LockfileFinderPort discovers lockfiles below a root directory.
type LockfileFinderPort interface {
	FindLockfiles(root string) ([]string, error)
}
