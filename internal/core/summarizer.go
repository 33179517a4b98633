package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"gemlock/internal/types"
)

// Summarizer reshapes a parsed lockfile into a Summary. It keeps the parser's
// order and never sorts, deduplicates or validates names.
type Summarizer struct{}

func NewSummarizer() Summarizer {
	return Summarizer{}
}

func (s Summarizer) Summarize(ctx context.Context, lock types.ParsedLockfile) types.Summary {
	summary := types.NewSummary()
	summary.DirectDependencies = append(summary.DirectDependencies, lock.DependencyNames()...)

	for _, spec := range lock.Specs {
		assert.NotEmpty(ctx, spec.Name, "spec name must be set")
		summary.DepsToChildren.Set(spec.Name, spec.DependencyNames())
		summary.Dependencies.Set(spec.Name, types.LockEntry{
			Name:    spec.Name,
			Version: spec.Version,
		})
	}

	log.Debug().
		Int("direct", len(summary.DirectDependencies)).
		Int("specs", len(lock.Specs)).
		Int("packages", summary.Dependencies.Len()).
		Msg("summarized lockfile")
	return summary
}
