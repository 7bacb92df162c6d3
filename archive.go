package pagecomp

import (
	"context"
	"io"
)

// ArchiveExtractor pulls the HTML payload out of a saved-page archive.
type ArchiveExtractor interface {
	// Extract returns the decoded text of the first HTML part.
	// Returns ENOTFOUND if the archive holds no non-empty HTML part and
	// EINVALID if the archive cannot be parsed.
	Extract(r io.Reader) (string, error)
}

// Capturer saves a live web page as an archive.
type Capturer interface {
	// Capture navigates to url and returns the page as MHTML bytes.
	Capture(ctx context.Context, url string) ([]byte, error)
	Close() error
}
