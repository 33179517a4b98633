package app

import (
	"context"

	"github.com/rs/zerolog/log"
)

func (s Service) Gems(ctx context.Context, req GemsRequest) (GemsResult, error) {
	result, err := s.Summarize(ctx, SummarizeRequest{LockfilePath: req.LockfilePath})
	if err != nil {
		return GemsResult{}, err
	}
	dirs, err := s.GemCache.GemDirs(ctx, req.GemPaths)
	if err != nil {
		return GemsResult{}, err
	}
	artifacts, err := s.GemCache.Locate(ctx, dirs, result.Summary.Entries(), req.Workers)
	if err != nil {
		return GemsResult{}, err
	}

	missing := 0
	warn := false
	for _, artifact := range artifacts {
		if !artifact.Missing {
			continue
		}
		missing++
		if artifact.Name != "bundler" {
			warn = true
		}
	}
	if warn {
		log.Warn().Str("lockfile", req.LockfilePath).Int("missing", missing).
			Msg("lockfile has missing gems, run `bundle install`")
	}
	return GemsResult{GemDirs: dirs, Artifacts: artifacts, Missing: missing}, nil
}
