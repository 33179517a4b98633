package adapters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSBOMTimestamp(t *testing.T) {
	now := func() time.Time {
		return time.Date(2026, 3, 4, 5, 6, 7, 999, time.FixedZone("CET", 3600))
	}
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "RFC3339", input: "2025-06-15T10:30:00Z", expected: "2025-06-15T10:30:00Z"},
		{name: "RFC3339 with offset", input: "2025-06-15T12:30:00+02:00", expected: "2025-06-15T10:30:00Z"},
		{name: "RFC3339Nano truncated", input: "2025-06-15T10:30:00.123456789Z", expected: "2025-06-15T10:30:00Z"},
		{name: "go time string", input: "2025-06-15 10:30:00 +0000 UTC", expected: "2025-06-15T10:30:00Z"},
		{name: "date only", input: "2025-06-15", expected: "2025-06-15T00:00:00Z"},
		{name: "whitespace", input: "  2025-06-15T10:30:00Z  ", expected: "2025-06-15T10:30:00Z"},
		{name: "empty uses now", input: "", expected: "2026-03-04T04:06:07Z"},
		{name: "garbage uses now", input: "yesterday", expected: "2026-03-04T04:06:07Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sbomTimestamp(tt.input, now))
		})
	}
}
