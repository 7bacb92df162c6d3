package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagecomp"
)

// Ensure LoggingAnalyzer implements pagecomp.Analyzer.
var _ pagecomp.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with logging.
type LoggingAnalyzer struct {
	next   pagecomp.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next pagecomp.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the operation.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, summary pagecomp.PageSummary) (answer string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("analyze",
			"pages", len(summary),
			"chars", len(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Analyze(ctx, summary)
}
