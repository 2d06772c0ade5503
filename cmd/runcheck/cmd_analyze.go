package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runcheck/backend/internal/models"
	"github.com/runcheck/backend/internal/report"
	"github.com/runcheck/backend/internal/sanitize"
	"github.com/runcheck/backend/internal/services"
)

var analyzeFlags struct {
	baseLogPath      string
	beforeLogPath    string
	afterLogPath     string
	postPatchLogPath string
	mainTests        string
	reportTests      string
	jsonOutput       bool
	summariesOnly    bool
	stripANSI        bool
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Classify test cases against captured pipeline logs",
	Long: `Analyze checks each named test case against the pipeline logs it is
routed to and reports Passed, Failed or Not Found per (test case, log)
pair. A missing log that still has test cases routed to it produces a
SystemCheck error outcome instead.

Test lists accept inline delimited names (newline, comma or semicolon
separated) or @path/to/file to read the list from a file.

Usage:
  runcheck analyze --main-tests "shouldProcessOrder,shouldRejectOrder" \
    --base-log base.log --before-log before.log --after-log after.log
  runcheck analyze --report-tests @report-tests.txt --post-patch-log post.log

Exit codes: 0 when no outcome is Failed or Error, 1 when at least one
is, 2 on usage or file errors.`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVar(&analyzeFlags.baseLogPath, "base-log", "", "Path to the base run log")
	f.StringVar(&analyzeFlags.beforeLogPath, "before-log", "", "Path to the pre-patch run log")
	f.StringVar(&analyzeFlags.afterLogPath, "after-log", "", "Path to the post-patch run log")
	f.StringVar(&analyzeFlags.postPatchLogPath, "post-patch-log", "", "Path to the post-agent-patch run log")
	f.StringVar(&analyzeFlags.mainTests, "main-tests", "", "Main test set: inline list or @file")
	f.StringVar(&analyzeFlags.reportTests, "report-tests", "", "Report test set: inline list or @file")
	f.BoolVar(&analyzeFlags.jsonOutput, "json", false, "Emit outcomes as JSON instead of a table")
	f.BoolVar(&analyzeFlags.summariesOnly, "summaries", false, "Print one summary line per outcome")
	f.BoolVar(&analyzeFlags.stripANSI, "strip-ansi", false, "Strip ANSI escape sequences from logs before matching")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	mainTests, err := readTestList(analyzeFlags.mainTests)
	if err != nil {
		return fmt.Errorf("read main test list: %w", err)
	}
	reportTests, err := readTestList(analyzeFlags.reportTests)
	if err != nil {
		return fmt.Errorf("read report test list: %w", err)
	}

	if strings.TrimSpace(mainTests) == "" && strings.TrimSpace(reportTests) == "" {
		return fmt.Errorf("no test cases given\n\nProvide at least one of --main-tests or --report-tests")
	}

	req := models.AnalysisRequest{
		MainJsonTests:   mainTests,
		ReportJsonTests: reportTests,
	}
	if req.BaseLog, err = readLogFile(analyzeFlags.baseLogPath); err != nil {
		return fmt.Errorf("read base log: %w", err)
	}
	if req.BeforeLog, err = readLogFile(analyzeFlags.beforeLogPath); err != nil {
		return fmt.Errorf("read before log: %w", err)
	}
	if req.AfterLog, err = readLogFile(analyzeFlags.afterLogPath); err != nil {
		return fmt.Errorf("read after log: %w", err)
	}
	if req.PostAgentPatchLog, err = readLogFile(analyzeFlags.postPatchLogPath); err != nil {
		return fmt.Errorf("read post-patch log: %w", err)
	}

	if analyzeFlags.stripANSI {
		req = sanitize.Request(req)
	}

	analysisService := services.NewAnalysisService()
	outcomes := analysisService.AnalyzeLogs(&req)

	out := cmd.OutOrStdout()
	switch {
	case analyzeFlags.jsonOutput:
		data, err := json.MarshalIndent(outcomes, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal outcomes: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case analyzeFlags.summariesOnly:
		report.NewConsoleFormatter(out).FormatSummaries(outcomes)
	default:
		report.NewConsoleFormatter(out).FormatOutcomes(outcomes)
	}

	if report.Tally(outcomes).Blocking() {
		os.Exit(1)
	}
	return nil
}

// readTestList resolves a test list flag value. A value starting with @ is
// read from the named file; anything else is taken literally.
func readTestList(value string) (string, error) {
	if !strings.HasPrefix(value, "@") {
		return value, nil
	}
	data, err := os.ReadFile(strings.TrimPrefix(value, "@"))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// readLogFile reads one log file. An empty path means the log was not
// captured, which the engine reports as a SystemCheck error when tests are
// routed to it.
func readLogFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
