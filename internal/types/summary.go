package types

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// LockEntry is one resolved package of a summary.
type LockEntry struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

// DependencyGraph maps a package name to the names it depends on directly.
// Keys keep the order they were first inserted in.
type DependencyGraph = orderedmap.OrderedMap[string, []string]

// LockEntries maps a package name to its resolved entry, in insertion order.
type LockEntries = orderedmap.OrderedMap[string, LockEntry]

// Summary is the document printed by the summarize command.
type Summary struct {
	DirectDependencies []string         `json:"directDependencies" yaml:"directDependencies"`
	DepsToChildren     *DependencyGraph `json:"depsToChildren" yaml:"depsToChildren"`
	Dependencies       *LockEntries     `json:"dependencies" yaml:"dependencies"`
}

// NewSummary returns a summary whose collections are empty but non-nil, so
// that they serialize as [] and {} rather than null.
func NewSummary() Summary {
	return Summary{
		DirectDependencies: []string{},
		DepsToChildren:     orderedmap.New[string, []string](),
		Dependencies:       orderedmap.New[string, LockEntry](),
	}
}

// PackageNames returns the keys of Dependencies in order.
func (s Summary) PackageNames() []string {
	if s.Dependencies == nil {
		return nil
	}
	names := make([]string, 0, s.Dependencies.Len())
	for pair := s.Dependencies.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Entries returns the values of Dependencies in order.
func (s Summary) Entries() []LockEntry {
	if s.Dependencies == nil {
		return nil
	}
	entries := make([]LockEntry, 0, s.Dependencies.Len())
	for pair := s.Dependencies.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, pair.Value)
	}
	return entries
}

// Children returns the recorded children of name and whether name is a key
// of DepsToChildren.
func (s Summary) Children(name string) ([]string, bool) {
	if s.DepsToChildren == nil {
		return nil, false
	}
	return s.DepsToChildren.Get(name)
}

// Entry returns the resolved entry for name.
func (s Summary) Entry(name string) (LockEntry, bool) {
	if s.Dependencies == nil {
		return LockEntry{}, false
	}
	return s.Dependencies.Get(name)
}
