package ports

import "gemlock/internal/types"

type SBOMPort interface {
	WriteSBOM(path string, name string, createdAt string, summary types.Summary) error
}
