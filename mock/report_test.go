package mock_test

import (
	"testing"

	"github.com/fwojciec/pagecomp"
	"github.com/fwojciec/pagecomp/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where ReportWriter is expected
	var _ pagecomp.ReportWriter = &mock.ReportWriter{}
}

func TestReportWriter_WriteReport(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteReportFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *pagecomp.Report
		w := &mock.ReportWriter{
			WriteReportFn: func(report *pagecomp.Report) error {
				calledWith = report
				return nil
			},
		}

		report := &pagecomp.Report{RunID: "run-1", Sample: true}

		err := w.WriteReport(report)

		require.NoError(t, err)
		assert.Equal(t, report, calledWith)
	})
}

func TestCapturer_Close(t *testing.T) {
	t.Parallel()

	t.Run("nil CloseFn returns nil", func(t *testing.T) {
		t.Parallel()

		c := &mock.Capturer{}

		assert.NoError(t, c.Close())
	})
}
