// Package audit runs the component audit of a batch of saved pages.
// It coordinates archive extraction, classification and normalization.
package audit

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/fwojciec/pagecomp"
)

// Auditor turns archives into a normalized page summary.
type Auditor struct {
	Extractor  pagecomp.ArchiveExtractor
	Classifier pagecomp.Classifier
	Logger     *slog.Logger
	MaxFiles   int
}

// Result holds the outcome of an audit run.
type Result struct {
	Summary pagecomp.PageSummary

	// Sample is true when no archives were given and Summary holds the
	// fixed example page.
	Sample bool

	// Skipped lists the names of archives that could not be processed.
	Skipped []string
}

// ProgressEvent reports progress during an audit run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Name      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFinished
)

// ProgressFunc is a callback for reporting audit progress.
type ProgressFunc func(event ProgressEvent)

// Run processes at most MaxFiles archives in order. An archive that fails
// extraction or classification is logged and skipped; the others are
// unaffected. With no archives, Run returns the sample summary.
func (a *Auditor) Run(ctx context.Context, archives []*pagecomp.Archive, progress ProgressFunc) (*Result, error) {
	if len(archives) == 0 {
		a.logger().Info("no archives supplied, using sample data")
		return &Result{Summary: pagecomp.SampleSummary(), Sample: true}, nil
	}

	limit := a.MaxFiles
	if limit <= 0 {
		limit = pagecomp.MaxFiles
	}
	if len(archives) > limit {
		a.logger().Warn("too many archives, extra files ignored",
			"given", len(archives),
			"limit", limit,
		)
		archives = archives[:limit]
	}

	total := len(archives)
	notify(progress, ProgressEvent{Type: ProgressStarted, Total: total})

	result := &Result{Summary: make(pagecomp.PageSummary, 0, total)}
	for i, archive := range archives {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		comps, err := a.process(archive)
		if err != nil {
			a.logger().Warn("could not extract components",
				"file", archive.Name,
				"err", pagecomp.ErrorMessage(err),
			)
			result.Skipped = append(result.Skipped, archive.Name)
			notify(progress, ProgressEvent{Type: ProgressSkipped, Completed: i + 1, Total: total, Name: archive.Name, Error: err})
			continue
		}

		result.Summary = append(result.Summary, &pagecomp.Page{Name: archive.Name, Components: comps})
		notify(progress, ProgressEvent{Type: ProgressCompleted, Completed: i + 1, Total: total, Name: archive.Name})
	}

	notify(progress, ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	return result, nil
}

// process runs extract, classify and normalize for one archive.
func (a *Auditor) process(archive *pagecomp.Archive) (*pagecomp.Components, error) {
	html, err := a.Extractor.Extract(bytes.NewReader(archive.Data))
	if err != nil {
		return nil, err
	}

	comps, err := a.Classifier.Classify(html)
	if err != nil {
		return nil, err
	}

	comps.Normalize()
	return comps, nil
}

func (a *Auditor) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}

func notify(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}
