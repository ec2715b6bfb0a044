package application

import (
	"github.com/felixgeelhaar/srclist/internal/domain"
	"github.com/felixgeelhaar/srclist/internal/domain/sourceset"
)

// GenerateService turns the on-disk source tree into the rendered src_files
// block. Every surface (generate, status, watch, apply) goes through it so
// they all agree on the block bytes.
type GenerateService struct {
	scanner domain.SourceScanner
	conv    domain.Conventions
}

func NewGenerateService(scanner domain.SourceScanner, conv domain.Conventions) *GenerateService {
	return &GenerateService{scanner: scanner, conv: conv}
}

// Collect discovers and collates the current source tree.
func (s *GenerateService) Collect() (*sourceset.SourceSet, error) {
	entries, err := s.scanner.Sources(s.conv.SourceRoot, s.conv.Extension)
	if err != nil {
		return nil, err
	}
	return sourceset.Collate(entries, s.conv), nil
}

// RenderBlock discovers, collates and renders in one step, returning the
// block text and the number of discovered files.
func (s *GenerateService) RenderBlock() (string, int, error) {
	set, err := s.Collect()
	if err != nil {
		return "", 0, err
	}
	return set.Render(), set.FileCount(), nil
}
