// Package rod captures live web pages as MHTML archives using headless
// Chrome via go-rod.
package rod

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fwojciec/pagecomp"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultTimeout bounds one capture.
const DefaultTimeout = 30 * time.Second

// Ensure Capturer implements pagecomp.Capturer at compile time.
var _ pagecomp.Capturer = (*Capturer)(nil)

// Capturer saves rendered pages as MHTML snapshots.
type Capturer struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	timeout  time.Duration
	closed   atomic.Bool
}

// Option configures a Capturer.
type Option func(*Capturer)

// WithTimeout sets the maximum duration of one capture.
// Defaults to 30 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *Capturer) {
		c.timeout = d
	}
}

// NewCapturer creates a new Capturer that launches a headless Chrome browser.
// Close must be called when the Capturer is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewCapturer(opts ...Option) (*Capturer, error) {
	c := &Capturer{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(c)
	}

	l := launcher.New().Leakless(true).Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	c.browser = browser
	c.launcher = l
	return c, nil
}

// Capture navigates to url, waits for the load event and returns the page
// serialized by Chrome as MHTML.
func (c *Capturer) Capture(ctx context.Context, url string) ([]byte, error) {
	if c.closed.Load() {
		return nil, pagecomp.Errorf(pagecomp.EINVALID, "capturer is closed")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	page, err := c.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return nil, fmt.Errorf("navigating to %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("waiting for %s: %w", url, err)
	}

	snapshot, err := proto.PageCaptureSnapshot{
		Format: proto.PageCaptureSnapshotFormatMhtml,
	}.Call(page)
	if err != nil {
		return nil, fmt.Errorf("capturing snapshot: %w", err)
	}

	return []byte(snapshot.Data), nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (c *Capturer) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	err := c.browser.Close()
	c.launcher.Kill()
	return err
}
