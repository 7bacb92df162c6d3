package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagecomp"
)

// Ensure LoggingClassifier implements pagecomp.Classifier.
var _ pagecomp.Classifier = (*LoggingClassifier)(nil)

// LoggingClassifier wraps a Classifier with debug logging.
type LoggingClassifier struct {
	next   pagecomp.Classifier
	logger *slog.Logger
}

// NewLoggingClassifier creates a new LoggingClassifier.
func NewLoggingClassifier(next pagecomp.Classifier, logger *slog.Logger) *LoggingClassifier {
	return &LoggingClassifier{next: next, logger: logger}
}

// Classify delegates to the wrapped classifier and logs the record count.
func (c *LoggingClassifier) Classify(html string) (comps *pagecomp.Components, err error) {
	defer func(begin time.Time) {
		count := 0
		if comps != nil {
			count = comps.Count()
		}
		c.logger.Debug("classify",
			"chars", len(html),
			"records", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Classify(html)
}
