package app

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

func (s Service) Find(req FindRequest) (FindResult, error) {
	root := strings.TrimSpace(req.Root)
	if root == "" {
		return FindResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("search root is required")
	}
	paths, err := s.Finder.FindLockfiles(root)
	if err != nil {
		return FindResult{}, err
	}
	return FindResult{Paths: paths}, nil
}
