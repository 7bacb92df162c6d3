package mock

import (
	"context"

	"github.com/fwojciec/pagecomp"
)

var _ pagecomp.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of pagecomp.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, summary pagecomp.PageSummary) (string, error)
}

func (a *Analyzer) Analyze(ctx context.Context, summary pagecomp.PageSummary) (string, error) {
	return a.AnalyzeFn(ctx, summary)
}
