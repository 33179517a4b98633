package adapters

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"gemlock/internal/ports"
	"gemlock/internal/types"
)

const (
	sectionDependencies = "DEPENDENCIES"
	sectionPlatforms    = "PLATFORMS"
	sectionRubyVersion  = "RUBY VERSION"
	sectionBundledWith  = "BUNDLED WITH"
	sectionChecksums    = "CHECKSUMS"
	sectionUnknown      = "?"
)

var sourceSections = map[string]types.SourceType{
	string(types.SourceTypeGem):    types.SourceTypeGem,
	string(types.SourceTypeGit):    types.SourceTypeGit,
	string(types.SourceTypePath):   types.SourceTypePath,
	string(types.SourceTypePlugin): types.SourceTypePlugin,
}

var (
	// indent, name, version, platform, pinned
	nameVersionPattern = regexp.MustCompile(`^( {2}| {4}| {6})([^ ].*?)(?: \(([^-]*)(?:-(.*))?\))?(!)?$`)
	optionPattern      = regexp.MustCompile(`^  ([a-zA-Z_]+): (.*)$`)
	checksumPattern    = regexp.MustCompile(`^  ([^ ]+) \(([^)]*)\)(?: (.*))?$`)
	conflictPattern    = regexp.MustCompile(`<<<<<<<|=======|>>>>>>>|\|\|\|\|\|\|\|`)
	gemVersionPattern  = regexp.MustCompile(`^[0-9]+(\.[0-9A-Za-z]+)*$`)
)

// GemfileLockParser reads the Bundler lockfile grammar: source blocks with
// their specs, DEPENDENCIES, PLATFORMS, RUBY VERSION, BUNDLED WITH and
// CHECKSUMS. Unknown sections are skipped.
type GemfileLockParser struct{}

func NewGemfileLockParser() GemfileLockParser {
	return GemfileLockParser{}
}

type lockParseState struct {
	section    string
	recognized bool
	source     int
	specs      map[string]*types.ParsedSpec
	current    *types.ParsedSpec
	dependency map[string]int
	lock       types.ParsedLockfile
	lineNumber int
}

func (p GemfileLockParser) Parse(content []byte) (types.ParsedLockfile, error) {
	text := string(content)
	if conflictPattern.MatchString(text) {
		return types.ParsedLockfile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("lockfile contains merge conflicts")
	}

	state := &lockParseState{
		source:     -1,
		specs:      map[string]*types.ParsedSpec{},
		dependency: map[string]int{},
		lock: types.ParsedLockfile{
			Checksums: map[string]string{},
		},
	}
	sawContent := false
	for index, raw := range strings.Split(text, "\n") {
		line := strings.TrimRight(raw, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		sawContent = true
		state.lineNumber = index + 1
		if err := state.consume(line); err != nil {
			return types.ParsedLockfile{}, err
		}
	}
	if sawContent && !state.recognized {
		return types.ParsedLockfile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported lockfile format: no Bundler sections found")
	}

	state.lock.Specs = sortedSpecs(state.specs)
	return state.lock, nil
}

func (s *lockParseState) consume(line string) error {
	if !strings.HasPrefix(line, " ") {
		s.enterSection(line)
		return nil
	}
	switch s.section {
	case "", sectionUnknown:
		return nil
	case sectionDependencies:
		s.parseDependency(line)
		return nil
	case sectionPlatforms:
		s.lock.Platforms = append(s.lock.Platforms, strings.TrimSpace(line))
		return nil
	case sectionRubyVersion:
		s.lock.RubyVersion = strings.TrimSpace(line)
		return nil
	case sectionBundledWith:
		s.lock.BundledWith = strings.TrimSpace(line)
		return nil
	case sectionChecksums:
		s.parseChecksum(line)
		return nil
	default:
		return s.parseSource(line)
	}
}

func (s *lockParseState) enterSection(line string) {
	s.current = nil
	header := strings.TrimSpace(line)
	if sourceType, ok := sourceSections[header]; ok {
		s.recognized = true
		s.section = header
		s.lock.Sources = append(s.lock.Sources, types.LockSource{
			Type:    sourceType,
			Options: map[string]string{},
		})
		s.source = len(s.lock.Sources) - 1
		return
	}
	switch header {
	case sectionDependencies, sectionPlatforms, sectionRubyVersion, sectionBundledWith, sectionChecksums:
		s.recognized = true
		s.section = header
	default:
		s.section = sectionUnknown
	}
	s.source = -1
}

func (s *lockParseState) parseSource(line string) error {
	if strings.TrimSpace(line) == "specs:" {
		return nil
	}
	if match := optionPattern.FindStringSubmatch(line); match != nil {
		s.setSourceOption(match[1], match[2])
		return nil
	}
	match := nameVersionPattern.FindStringSubmatch(line)
	if match == nil {
		return nil
	}
	indent, name, version, platform := len(match[1]), match[2], match[3], match[4]
	switch indent {
	case 4:
		if version == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("spec %s has no version (line %d)", name, s.lineNumber))
		}
		if !gemVersionPattern.MatchString(strings.TrimSpace(version)) {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("malformed version number %q for %s (line %d)", version, name, s.lineNumber))
		}
		spec := &types.ParsedSpec{
			Name:         name,
			Version:      strings.TrimSpace(version),
			Platform:     platform,
			Source:       s.source,
			Dependencies: []types.ParsedDependency{},
		}
		s.specs[spec.FullName()] = spec
		s.current = spec
	case 6:
		if s.current == nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("dependency %s is not attached to a spec (line %d)", name, s.lineNumber))
		}
		s.current.Dependencies = append(s.current.Dependencies, types.ParsedDependency{
			Name:         name,
			Requirements: splitRequirements(version),
		})
	}
	return nil
}

func (s *lockParseState) setSourceOption(key string, value string) {
	if s.source < 0 {
		return
	}
	source := &s.lock.Sources[s.source]
	source.Options[key] = value
	switch key {
	case "remote":
		source.Remote = value
	case "revision":
		source.Revision = value
	case "branch":
		source.Branch = value
	case "tag":
		source.Tag = value
	case "ref":
		source.Ref = value
	case "glob":
		source.Glob = value
	}
}

func (s *lockParseState) parseDependency(line string) {
	match := nameVersionPattern.FindStringSubmatch(line)
	if match == nil || len(match[1]) != 2 {
		return
	}
	dep := types.ParsedDependency{
		Name:         match[2],
		Requirements: splitRequirements(match[3]),
		Pinned:       match[5] == "!",
	}
	if index, ok := s.dependency[dep.Name]; ok {
		s.lock.Dependencies[index] = dep
		return
	}
	s.dependency[dep.Name] = len(s.lock.Dependencies)
	s.lock.Dependencies = append(s.lock.Dependencies, dep)
}

func (s *lockParseState) parseChecksum(line string) {
	match := checksumPattern.FindStringSubmatch(line)
	if match == nil {
		return
	}
	s.lock.Checksums[match[1]+"-"+match[2]] = strings.TrimSpace(match[3])
}

func splitRequirements(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	var requirements []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			requirements = append(requirements, trimmed)
		}
	}
	return requirements
}

func sortedSpecs(specs map[string]*types.ParsedSpec) []types.ParsedSpec {
	names := make([]string, 0, len(specs))
	for fullName := range specs {
		names = append(names, fullName)
	}
	sort.Strings(names)
	ordered := make([]types.ParsedSpec, 0, len(names))
	for _, fullName := range names {
		ordered = append(ordered, *specs[fullName])
	}
	return ordered
}

var _ ports.LockfileParserPort = GemfileLockParser{}
