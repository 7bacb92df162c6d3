// Package markdown renders component reports as GitHub-flavored Markdown
// using nao1215/markdown.
package markdown

import (
	"bytes"
	"io"
	"strconv"

	"github.com/fwojciec/pagecomp"
	"github.com/nao1215/markdown"
)

// Ensure ReportWriter implements pagecomp.ReportWriter at compile time.
var _ pagecomp.ReportWriter = (*ReportWriter)(nil)

// Title is the heading of every report.
const Title = "UI Component Analysis"

// EmptyMessage is shown when the view holds no files.
const EmptyMessage = "Nothing to display yet."

// SampleNote explains that the report shows the built-in example.
const SampleNote = "No archives were supplied. Showing sample data."

// ReportWriter writes reports as Markdown.
type ReportWriter struct {
	output io.Writer
}

// NewReportWriter creates a ReportWriter that writes to w.
func NewReportWriter(w io.Writer) *ReportWriter {
	return &ReportWriter{output: w}
}

// WriteReport renders the counts table, the per-file details and the
// optional insights.
func (w *ReportWriter) WriteReport(report *pagecomp.Report) error {
	md := markdown.NewMarkdown(w.output)

	md.H1(Title)
	md.PlainText("")

	if report.Sample {
		md.Note(SampleNote)
		md.PlainText("")
	}

	if len(report.View) == 0 {
		md.PlainText(EmptyMessage)
	} else {
		writeCounts(md, report.View)
		if err := writeDetails(md, report.View); err != nil {
			return err
		}
	}

	if report.Analysis != "" {
		md.H2("Insights")
		md.PlainText("")
		md.PlainText(report.Analysis)
	}

	return md.Build()
}

// writeCounts writes one row per file with one column per display group.
func writeCounts(md *markdown.Markdown, view pagecomp.View) {
	header := make([]string, 0, len(pagecomp.DisplayGroups)+1)
	header = append(header, "File")
	alignment := []markdown.TableAlignment{markdown.AlignLeft}
	for _, g := range pagecomp.DisplayGroups {
		header = append(header, string(g))
		alignment = append(alignment, markdown.AlignRight)
	}

	rows := make([][]string, 0, len(view))
	for _, page := range view {
		row := make([]string, 0, len(header))
		row = append(row, page.Name)
		for _, g := range pagecomp.DisplayGroups {
			row = append(row, strconv.Itoa(page.Count(g)))
		}
		rows = append(rows, row)
	}

	md.H2("Component counts")
	md.PlainText("")
	md.Table(markdown.TableSet{Header: header, Rows: rows, Alignment: alignment})
	md.PlainText("")
}

// writeDetails writes one collapsible block per file holding its groups
// as JSON.
func writeDetails(md *markdown.Markdown, view pagecomp.View) error {
	md.H2("Details (per file)")
	md.PlainText("")
	for _, page := range view {
		var buf bytes.Buffer
		if err := pagecomp.EncodeJSON(&buf, page); err != nil {
			return err
		}
		block := markdown.NewMarkdown(io.Discard).
			CodeBlocks(markdown.SyntaxHighlightJSON, string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))).
			String()
		md.Details(page.Name, "\n"+block+"\n")
		md.PlainText("")
	}
	return nil
}
