package mock

import (
	"io"

	"github.com/fwojciec/pagecomp"
)

var _ pagecomp.ArchiveExtractor = (*ArchiveExtractor)(nil)

// ArchiveExtractor is a mock implementation of pagecomp.ArchiveExtractor.
type ArchiveExtractor struct {
	ExtractFn func(r io.Reader) (string, error)
}

func (e *ArchiveExtractor) Extract(r io.Reader) (string, error) {
	return e.ExtractFn(r)
}
