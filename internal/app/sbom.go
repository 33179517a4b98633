package app

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"gemlock/internal/adapters"
	"gemlock/internal/ports"
)

func (s Service) SBOM(ctx context.Context, req SBOMRequest) (SBOMResult, error) {
	output := strings.TrimSpace(req.OutputPath)
	if output == "" {
		return SBOMResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("sbom output path is required")
	}
	result, err := s.Summarize(ctx, SummarizeRequest{LockfilePath: req.LockfilePath})
	if err != nil {
		return SBOMResult{}, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = filepath.Base(filepath.Dir(absPath(req.LockfilePath)))
	}
	var writer ports.SBOMPort = s.SBOMWriter
	if strings.TrimSpace(req.Namespace) != "" {
		writer = adapters.SBOMWriterAdapter{NamespaceBase: req.Namespace}
	}
	clock := s.Clock
	if clock == nil {
		clock = time.Now
	}
	createdAt := clock().UTC().Format(time.RFC3339)
	if err := writer.WriteSBOM(output, name, createdAt, result.Summary); err != nil {
		return SBOMResult{}, err
	}
	return SBOMResult{OutputPath: output, PackageCount: result.Summary.Dependencies.Len()}, nil
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
