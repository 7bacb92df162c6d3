package main

import "github.com/fwojciec/pagecomp"

// Run executes the sample command.
func (c *SampleCmd) Run(deps *Dependencies) error {
	return pagecomp.EncodeJSON(deps.Stdout, pagecomp.SampleSummary())
}
