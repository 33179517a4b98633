package app

import (
	"context"

	"gemlock/internal/core"
)

func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	result, err := s.Summarize(ctx, SummarizeRequest{LockfilePath: req.LockfilePath})
	if err != nil {
		return InspectResult{}, err
	}
	lock := result.Lockfile
	return InspectResult{
		PackageCount:  result.Summary.Dependencies.Len(),
		DirectCount:   len(result.Summary.DirectDependencies),
		ChecksumCount: len(lock.Checksums),
		Sources:       lock.Sources,
		Platforms:     lock.Platforms,
		RubyVersion:   lock.RubyVersion,
		BundledWith:   lock.BundledWith,
		Report:        core.CheckConsistency(result.Summary),
	}, nil
}
