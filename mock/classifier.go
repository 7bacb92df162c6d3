package mock

import "github.com/fwojciec/pagecomp"

var _ pagecomp.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of pagecomp.Classifier.
type Classifier struct {
	ClassifyFn func(html string) (*pagecomp.Components, error)
}

func (c *Classifier) Classify(html string) (*pagecomp.Components, error) {
	return c.ClassifyFn(html)
}
