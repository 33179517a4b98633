package ports

import (
	"io"

	"gemlock/internal/types"
)

type SummaryWriterPort interface {
	WriteSummary(w io.Writer, summary types.Summary, format types.OutputFormat) error
}
