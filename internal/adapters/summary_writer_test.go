package adapters

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"gemlock/internal/types"
)

func railsSummary() types.Summary {
	summary := types.NewSummary()
	summary.DirectDependencies = append(summary.DirectDependencies, "rails")
	summary.DepsToChildren.Set("rails", []string{"activesupport"})
	summary.DepsToChildren.Set("activesupport", []string{})
	summary.Dependencies.Set("rails", types.LockEntry{Name: "rails", Version: "7.0.0"})
	summary.Dependencies.Set("activesupport", types.LockEntry{Name: "activesupport", Version: "7.0.0"})
	return summary
}

func TestSummaryWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewSummaryWriterAdapter().WriteSummary(&buf, railsSummary(), types.OutputFormatJSON))

	want := `{
  "directDependencies": [
    "rails"
  ],
  "depsToChildren": {
    "rails": [
      "activesupport"
    ],
    "activesupport": []
  },
  "dependencies": {
    "rails": {
      "name": "rails",
      "version": "7.0.0"
    },
    "activesupport": {
      "name": "activesupport",
      "version": "7.0.0"
    }
  }
}
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("unexpected json (-want +got):\n%s", diff)
	}
}

func TestSummaryWriterEmptySummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewSummaryWriterAdapter().WriteSummary(&buf, types.NewSummary(), ""))

	want := "{\n  \"directDependencies\": [],\n  \"depsToChildren\": {},\n  \"dependencies\": {}\n}\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("unexpected json (-want +got):\n%s", diff)
	}
}

func TestSummaryWriterJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	original := railsSummary()
	require.NoError(t, NewSummaryWriterAdapter().WriteSummary(&buf, original, types.OutputFormatJSON))

	var decoded types.Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, original.DirectDependencies, decoded.DirectDependencies)
	assert.Equal(t, original.PackageNames(), decoded.PackageNames())
	assert.Equal(t, original.Entries(), decoded.Entries())
	for _, name := range original.PackageNames() {
		want, _ := original.Children(name)
		got, ok := decoded.Children(name)
		require.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
}

func TestSummaryWriterYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewSummaryWriterAdapter().WriteSummary(&buf, railsSummary(), types.OutputFormatYAML))

	out := buf.String()
	assert.Less(t, strings.Index(out, "directDependencies"), strings.Index(out, "depsToChildren"))
	assert.Less(t, strings.Index(out, "depsToChildren"), strings.Index(out, "dependencies:"))
	assert.Less(t, strings.Index(out, "    rails:"), strings.Index(out, "    activesupport:"))

	var decoded struct {
		DirectDependencies []string                   `yaml:"directDependencies"`
		DepsToChildren     map[string][]string        `yaml:"depsToChildren"`
		Dependencies       map[string]types.LockEntry `yaml:"dependencies"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, []string{"rails"}, decoded.DirectDependencies)
	assert.Equal(t, []string{"activesupport"}, decoded.DepsToChildren["rails"])
	assert.Equal(t, "7.0.0", decoded.Dependencies["activesupport"].Version)
}

func TestSummaryWriterUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewSummaryWriterAdapter().WriteSummary(&buf, railsSummary(), "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
	assert.Zero(t, buf.Len())
}
