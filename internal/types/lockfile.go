package types

// SourceType names the lockfile section a gem was resolved from.
type SourceType string

const (
	SourceTypeGem    SourceType = "GEM"
	SourceTypeGit    SourceType = "GIT"
	SourceTypePath   SourceType = "PATH"
	SourceTypePlugin SourceType = "PLUGIN SOURCE"
)

// LockSource is one GEM, GIT, PATH or PLUGIN SOURCE block. Well-known
// options are lifted into fields; every option is also kept in Options.
type LockSource struct {
	Type     SourceType
	Remote   string
	Revision string
	Branch   string
	Tag      string
	Ref      string
	Glob     string
	Options  map[string]string
}

// ParsedDependency is a dependency declaration, either a top-level entry of
// the DEPENDENCIES section or a child of a spec.
type ParsedDependency struct {
	Name         string
	Requirements []string
	Pinned       bool
}

// ParsedSpec is one resolved gem. Source indexes ParsedLockfile.Sources and
// is -1 when the spec was declared outside a source block.
type ParsedSpec struct {
	Name         string
	Version      string
	Platform     string
	Source       int
	Dependencies []ParsedDependency
}

// FullName returns name-version, suffixed with the platform when the spec is
// not a pure ruby gem.
func (s ParsedSpec) FullName() string {
	if s.Platform == "" || s.Platform == "ruby" {
		return s.Name + "-" + s.Version
	}
	return s.Name + "-" + s.Version + "-" + s.Platform
}

// DependencyNames returns the names of the spec's own dependencies in
// declaration order.
func (s ParsedSpec) DependencyNames() []string {
	names := make([]string, 0, len(s.Dependencies))
	for _, dep := range s.Dependencies {
		names = append(names, dep.Name)
	}
	return names
}

// ParsedLockfile is the subset of a Bundler lockfile the rest of the tool
// consumes.
type ParsedLockfile struct {
	Sources      []LockSource
	Specs        []ParsedSpec
	Dependencies []ParsedDependency
	Platforms    []string
	RubyVersion  string
	BundledWith  string
	Checksums    map[string]string
}

// DependencyNames returns the top-level dependency names in lockfile order.
func (l ParsedLockfile) DependencyNames() []string {
	names := make([]string, 0, len(l.Dependencies))
	for _, dep := range l.Dependencies {
		names = append(names, dep.Name)
	}
	return names
}
