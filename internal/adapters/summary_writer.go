package adapters

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"gemlock/internal/ports"
	"gemlock/internal/types"
)

type SummaryWriterAdapter struct{}

func NewSummaryWriterAdapter() SummaryWriterAdapter {
	return SummaryWriterAdapter{}
}

func (a SummaryWriterAdapter) WriteSummary(w io.Writer, summary types.Summary, format types.OutputFormat) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case types.OutputFormatJSON, "":
		data, err = json.MarshalIndent(summary, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case types.OutputFormatYAML:
		data, err = yaml.Marshal(summary)
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported output format %q", format))
	}
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal summary").
			WithCause(err)
	}
	if _, err := w.Write(data); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write summary").
			WithCause(err)
	}
	return nil
}

var _ ports.SummaryWriterPort = SummaryWriterAdapter{}
