package pagecomp

// Policy selects the rule set used to classify elements.
type Policy string

// Policy constants.
const (
	// PolicyStrict matches on fixed tag names plus a "gallery" and "modal"
	// class check on div elements.
	PolicyStrict Policy = "strict"

	// PolicyLoose matches on tag names or keywords found in an element's
	// class list and id.
	PolicyLoose Policy = "loose"
)

// MatchMode controls how loose-policy keywords are matched against the
// class list and id of an element.
type MatchMode string

// MatchMode constants.
const (
	// MatchSubstring matches a keyword anywhere, so "nav" matches
	// "navigation-timeline".
	MatchSubstring MatchMode = "substring"

	// MatchWord requires the keyword to be bounded by a non-alphanumeric
	// character or the edge of the string.
	MatchWord MatchMode = "word"
)

// Limits holds the maximum length, in code points, of stored text.
type Limits struct {
	// Text limits header, footer and text block text.
	Text int `yaml:"text"`

	// Markup limits serialized button and modal markup.
	Markup int `yaml:"markup"`
}

// DefaultLimits returns the truncation limits of a policy.
func DefaultLimits(p Policy) Limits {
	if p == PolicyStrict {
		return Limits{Text: 100, Markup: 120}
	}
	return Limits{Text: 120, Markup: 150}
}

// Classifier maps the elements of an HTML document to component categories.
type Classifier interface {
	// Classify parses html and returns the matched records per category in
	// document order. The result is not yet deduplicated.
	Classify(html string) (*Components, error)
}
