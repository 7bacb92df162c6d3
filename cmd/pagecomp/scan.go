package main

import (
	"fmt"

	"github.com/fwojciec/pagecomp"
	"github.com/fwojciec/pagecomp/audit"
	"github.com/fwojciec/pagecomp/fs"
	"github.com/fwojciec/pagecomp/markdown"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	files := c.Files
	if limit := deps.Auditor.MaxFiles; limit > 0 && len(files) > limit {
		deps.Logger.Warn("too many archives, extra files ignored",
			"given", len(files),
			"limit", limit,
		)
		files = files[:limit]
	}

	archives, err := fs.ReadArchives(files)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagecomp.ErrorMessage(err))
		return err
	}

	progress := func(event audit.ProgressEvent) {
		switch event.Type {
		case audit.ProgressCompleted:
			deps.Logger.Debug("page classified", "file", event.Name, "done", event.Completed, "total", event.Total)
		case audit.ProgressSkipped:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.Name, pagecomp.ErrorMessage(event.Error))
		}
	}

	result, err := deps.Auditor.Run(deps.Ctx, archives, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagecomp.ErrorMessage(err))
		return err
	}

	report := &pagecomp.Report{
		RunID:  deps.RunID,
		Sample: result.Sample,
		View:   pagecomp.Aggregate(result.Summary),
	}

	if c.Analyze && result.Sample {
		deps.Logger.Warn("no archives supplied, analysis skipped for sample data")
	} else if c.Analyze {
		analysis, err := deps.Analyzer.Analyze(deps.Ctx, result.Summary)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagecomp.ErrorMessage(err))
			return err
		}
		report.Analysis = analysis
	}

	if c.Format == "json" {
		return pagecomp.EncodeJSON(deps.Stdout, report)
	}
	return markdown.NewReportWriter(deps.Stdout).WriteReport(report)
}
