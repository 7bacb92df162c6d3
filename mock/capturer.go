package mock

import (
	"context"

	"github.com/fwojciec/pagecomp"
)

var _ pagecomp.Capturer = (*Capturer)(nil)

// Capturer is a mock implementation of pagecomp.Capturer.
type Capturer struct {
	CaptureFn func(ctx context.Context, url string) ([]byte, error)
	CloseFn   func() error
}

func (c *Capturer) Capture(ctx context.Context, url string) ([]byte, error) {
	return c.CaptureFn(ctx, url)
}

func (c *Capturer) Close() error {
	if c.CloseFn == nil {
		return nil
	}
	return c.CloseFn()
}
