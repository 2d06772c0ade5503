// Package report renders analysis outcomes for terminal consumption.
package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/runcheck/backend/internal/models"
)

// Totals aggregates outcome counts for one analysis run.
type Totals struct {
	Passed   int
	Failed   int
	NotFound int
	Errors   int
}

// Total returns the number of outcomes tallied.
func (t Totals) Total() int {
	return t.Passed + t.Failed + t.NotFound + t.Errors
}

// Blocking reports whether the run contained any Failed or Error outcome.
func (t Totals) Blocking() bool {
	return t.Failed > 0 || t.Errors > 0
}

// Tally counts outcomes by result.
func Tally(outcomes []models.AnalysisOutcome) Totals {
	var totals Totals
	for _, outcome := range outcomes {
		switch outcome.Result {
		case models.StatusPassed:
			totals.Passed++
		case models.StatusFailed:
			totals.Failed++
		case models.StatusError:
			totals.Errors++
		default:
			totals.NotFound++
		}
	}
	return totals
}

// ConsoleFormatter formats and displays analysis outcomes as a table.
type ConsoleFormatter struct {
	out io.Writer
}

// NewConsoleFormatter creates a new ConsoleFormatter writing to out.
func NewConsoleFormatter(out io.Writer) *ConsoleFormatter {
	return &ConsoleFormatter{
		out: out,
	}
}

// FormatOutcomes renders the outcome table and a totals footer.
func (f *ConsoleFormatter) FormatOutcomes(outcomes []models.AnalysisOutcome) {
	totals := Tally(outcomes)

	t := table.NewWriter()
	t.SetOutputMirror(f.out)
	t.SetTitle(fmt.Sprintf("Log Verification Results (%d outcomes)", totals.Total()))

	t.AppendHeader(table.Row{
		"Test Case", "Log Source", "Result", "Status", "Message",
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Test Case", WidthMax: 60, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Log Source", AutoMerge: true},
		{Name: "Message", WidthMax: 50, WidthMaxEnforcer: text.WrapSoft},
	})

	for _, outcome := range outcomes {
		t.AppendRow(table.Row{
			outcome.TestCaseName,
			outcome.LogSource,
			outcome.Result,
			statusString(outcome.Result),
			outcome.Message,
		})
	}

	if totals.Blocking() {
		t.SetStyle(table.StyleColoredBlackOnRedWhite)
	} else {
		t.SetStyle(table.StyleColoredBlackOnGreenWhite)
	}

	t.AppendFooter(table.Row{
		"TOTAL",
		"",
		fmt.Sprintf("%d passed / %d failed", totals.Passed, totals.Failed),
		fmt.Sprintf("%d not found", totals.NotFound),
		fmt.Sprintf("%d errors", totals.Errors),
	})

	t.Render()
}

// FormatSummaries writes the one-line summary of each outcome, matching the
// summary strings carried in the API response.
func (f *ConsoleFormatter) FormatSummaries(outcomes []models.AnalysisOutcome) {
	for _, outcome := range outcomes {
		fmt.Fprintln(f.out, outcome.Summary)
	}
}

func statusString(result models.OutcomeStatus) string {
	switch result {
	case models.StatusPassed:
		return "OK"
	case models.StatusError:
		return "ERROR"
	default:
		return "NOT OK"
	}
}
