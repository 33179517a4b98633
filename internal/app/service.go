package app

import (
	"time"

	"gemlock/internal/adapters"
	"gemlock/internal/ports"
)

type Service struct {
	Reader     ports.LockfileReaderPort
	Parser     ports.LockfileParserPort
	Writer     ports.SummaryWriterPort
	Finder     ports.LockfileFinderPort
	GemCache   ports.GemCachePort
	SBOMWriter ports.SBOMPort
	Clock      func() time.Time
}

func NewService() Service {
	return Service{
		Reader:     adapters.NewLockfileFileAdapter(),
		Parser:     adapters.NewGemfileLockParser(),
		Writer:     adapters.NewSummaryWriterAdapter(),
		Finder:     adapters.NewLockfileFinderAdapter(),
		GemCache:   adapters.NewGemCacheAdapter(),
		SBOMWriter: adapters.NewSBOMWriterAdapter(),
		Clock:      time.Now,
	}
}
