package types

// GemArtifact is the cached .gem archive backing a lock entry.
type GemArtifact struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Path    string `json:"path,omitempty"`
	SHA1    string `json:"sha1,omitempty"`
	SHA256  string `json:"sha256,omitempty"`
	Missing bool   `json:"missing,omitempty"`
}

// ConsistencyReport lists names that are referenced by the lockfile but have
// no resolved spec.
type ConsistencyReport struct {
	MissingDirect   []string
	MissingChildren map[string][]string
}

// Consistent reports whether every referenced name has a spec.
func (r ConsistencyReport) Consistent() bool {
	return len(r.MissingDirect) == 0 && len(r.MissingChildren) == 0
}

// OutputFormat selects the summary serialization.
type OutputFormat string

const (
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)
