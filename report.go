package pagecomp

// Report is everything shown to the user after one run.
type Report struct {
	// RunID identifies the run in logs and output.
	RunID string `json:"run"`

	// Sample is true when no archives were supplied and the fixed example
	// summary is shown instead.
	Sample bool `json:"sample"`

	View View `json:"view"`

	// Analysis is the LLM output, empty when no analysis was requested.
	Analysis string `json:"analysis,omitempty"`
}

// ReportWriter renders a Report.
type ReportWriter interface {
	WriteReport(report *Report) error
}
