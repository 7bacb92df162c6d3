package pagecomp

import "context"

// NothingToAnalyze is returned by analyzers for an empty page summary.
const NothingToAnalyze = "No pages to analyse."

// Analyzer produces a free-text analysis of the component patterns found
// across a batch of pages.
type Analyzer interface {
	// Analyze returns the analysis text verbatim. An empty summary yields
	// NothingToAnalyze without contacting any backend.
	Analyze(ctx context.Context, summary PageSummary) (string, error)
}

// Digest caps per-category items of one page so a whole batch fits into a
// single prompt.
type Digest struct {
	Header       []string     `json:"header"`
	Footer       []string     `json:"footer"`
	TextBlock    []string     `json:"text_block"`
	NavBar       []string     `json:"nav_bar"`
	ImageGallery []string     `json:"image_gallery"`
	LinkBlock    []string     `json:"link_block"`
	ButtonBlock  []string     `json:"button_block"`
	Forms        []FormRecord `json:"forms"`
	Modals       []string     `json:"modals"`
}

// Per-category digest caps.
const (
	digestTextItems   = 3
	digestNavItems    = 3
	digestImageItems  = 2
	digestLinkItems   = 2
	digestButtonItems = 1
	digestModalItems  = 1
)

// NewDigest builds the digest of one page's components.
func NewDigest(c *Components) *Digest {
	if c == nil {
		c = &Components{}
	}
	d := &Digest{
		Header:       taggedTexts(c.Header),
		Footer:       taggedTexts(c.Footer),
		TextBlock:    taggedTexts(c.TextBlock),
		NavBar:       linkTexts(c.NavBar, digestNavItems),
		ImageGallery: make([]string, 0, digestImageItems),
		LinkBlock:    linkTexts(c.LinkBlock, digestLinkItems),
		ButtonBlock:  markup(c.ButtonBlock, digestButtonItems),
		Forms:        append(make([]FormRecord, 0, len(c.Forms)), c.Forms...),
		Modals:       markup(c.Modals, digestModalItems),
	}
	for _, img := range head(c.ImageGallery, digestImageItems) {
		label := img.Alt
		if label == "" {
			label = img.Src
		}
		d.ImageGallery = append(d.ImageGallery, label)
	}
	return d
}

// DigestSet maps file names to page digests, in upload order.
type DigestSet []NamedDigest

// NamedDigest is a Digest labelled with its file name.
type NamedDigest struct {
	Name   string
	Digest *Digest
}

// NewDigestSet builds the digest of every page in a summary.
func NewDigestSet(summary PageSummary) DigestSet {
	set := make(DigestSet, 0, len(summary))
	for _, p := range summary {
		set = append(set, NamedDigest{Name: p.Name, Digest: NewDigest(p.Components)})
	}
	return set
}

// MarshalJSON encodes the set as an object keyed by file name.
func (s DigestSet) MarshalJSON() ([]byte, error) {
	fields := make([]jsonField, len(s))
	for i, d := range s {
		fields[i] = jsonField{Key: d.Name, Value: d.Digest}
	}
	return marshalObject(fields)
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func taggedTexts(records []TextRecord) []string {
	out := make([]string, 0, digestTextItems)
	for _, r := range head(records, digestTextItems) {
		out = append(out, r.Tag+": "+r.Text)
	}
	return out
}

func linkTexts(records []LinkRecord, n int) []string {
	out := make([]string, 0, n)
	for _, r := range head(records, n) {
		out = append(out, r.Text)
	}
	return out
}

func markup(records []MarkupRecord, n int) []string {
	out := make([]string, 0, n)
	for _, r := range head(records, n) {
		out = append(out, r.HTML)
	}
	return out
}
