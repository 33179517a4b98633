package app

import (
	"context"
	"io"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"gemlock/internal/core"
	"gemlock/internal/types"
)

func (s Service) Summarize(ctx context.Context, req SummarizeRequest) (SummarizeResult, error) {
	path := strings.TrimSpace(req.LockfilePath)
	if path == "" {
		return SummarizeResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("lockfile path is required")
	}
	content, err := s.Reader.ReadLockfile(path)
	if err != nil {
		return SummarizeResult{}, err
	}
	lock, err := s.Parser.Parse(content)
	if err != nil {
		return SummarizeResult{}, err
	}
	log.Debug().Str("lockfile", path).Int("specs", len(lock.Specs)).Msg("parsed lockfile")
	summary := core.NewSummarizer().Summarize(ctx, lock)
	return SummarizeResult{Summary: summary, Lockfile: lock}, nil
}

// Render writes the summary to w in the requested format.
func (s Service) Render(w io.Writer, summary types.Summary, format types.OutputFormat) error {
	return s.Writer.WriteSummary(w, summary, format)
}
