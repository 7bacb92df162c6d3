package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagecomp"
)

// Ensure LoggingCapturer implements pagecomp.Capturer.
var _ pagecomp.Capturer = (*LoggingCapturer)(nil)

// LoggingCapturer wraps a Capturer with logging.
type LoggingCapturer struct {
	next   pagecomp.Capturer
	logger *slog.Logger
}

// NewLoggingCapturer creates a new LoggingCapturer.
func NewLoggingCapturer(next pagecomp.Capturer, logger *slog.Logger) *LoggingCapturer {
	return &LoggingCapturer{next: next, logger: logger}
}

// Capture delegates to the wrapped capturer and logs the operation.
func (c *LoggingCapturer) Capture(ctx context.Context, url string) (data []byte, err error) {
	defer func(begin time.Time) {
		c.logger.Info("capture",
			"url", url,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Capture(ctx, url)
}

// Close delegates to the wrapped capturer.
func (c *LoggingCapturer) Close() error {
	return c.next.Close()
}
