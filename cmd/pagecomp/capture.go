package main

import (
	"fmt"

	"github.com/fwojciec/pagecomp"
	"github.com/fwojciec/pagecomp/fs"
)

// Run executes the capture command.
func (c *CaptureCmd) Run(deps *Dependencies) error {
	data, err := deps.Capturer.Capture(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagecomp.ErrorMessage(err))
		return err
	}

	store := fs.NewArchiveStore(c.Out)
	if err := store.Save(data); err != nil {
		_ = store.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagecomp.ErrorMessage(err))
		return err
	}
	if err := store.Commit(); err != nil {
		_ = store.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagecomp.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %s (%d bytes)\n", c.Out, len(data))
	return nil
}
