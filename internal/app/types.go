package app

import "gemlock/internal/types"

type SummarizeRequest struct {
	LockfilePath string
}

type SummarizeResult struct {
	Summary  types.Summary
	Lockfile types.ParsedLockfile
}

type InspectRequest struct {
	LockfilePath string
}

type InspectResult struct {
	PackageCount  int
	DirectCount   int
	ChecksumCount int
	Sources       []types.LockSource
	Platforms     []string
	RubyVersion   string
	BundledWith   string
	Report        types.ConsistencyReport
}

type FindRequest struct {
	Root string
}

type FindResult struct {
	Paths []string
}

type GemsRequest struct {
	LockfilePath string
	GemPaths     []string
	Workers      int
}

type GemsResult struct {
	GemDirs   []string
	Artifacts []types.GemArtifact
	Missing   int
}

type SBOMRequest struct {
	LockfilePath string
	OutputPath   string
	Name         string
	Namespace    string
}

type SBOMResult struct {
	OutputPath   string
	PackageCount int
}
