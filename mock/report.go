package mock

import "github.com/fwojciec/pagecomp"

var _ pagecomp.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of pagecomp.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(report *pagecomp.Report) error
}

func (w *ReportWriter) WriteReport(report *pagecomp.Report) error {
	return w.WriteReportFn(report)
}
