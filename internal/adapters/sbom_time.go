package adapters

import (
	"strings"
	"time"
)

var sbomTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05 -0700 MST",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// sbomTimestamp renders value as an SPDX creation time: UTC, second
// precision. Empty or unparseable values use now.
func sbomTimestamp(value string, now func() time.Time) string {
	trimmed := strings.TrimSpace(value)
	for _, layout := range sbomTimeLayouts {
		if trimmed == "" {
			break
		}
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.UTC().Truncate(time.Second).Format(time.RFC3339)
		}
	}
	return now().UTC().Truncate(time.Second).Format(time.RFC3339)
}
