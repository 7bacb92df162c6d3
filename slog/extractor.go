// Package slog provides logging decorators for pagecomp services.
package slog

import (
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/pagecomp"
)

// Ensure LoggingExtractor implements pagecomp.ArchiveExtractor.
var _ pagecomp.ArchiveExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an ArchiveExtractor with debug logging.
type LoggingExtractor struct {
	next   pagecomp.ArchiveExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagecomp.ArchiveExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(r io.Reader) (html string, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("extract",
			"chars", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(r)
}
