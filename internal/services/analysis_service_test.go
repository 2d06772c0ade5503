package services

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/runcheck/backend/internal/models"
)

func TestAnalyzeLogsNilRequest(t *testing.T) {
	service := NewAnalysisService()

	outcomes := service.AnalyzeLogs(nil)

	expected := []models.AnalysisOutcome{
		{
			TestCaseName: "SystemCheck",
			LogSource:    models.LogSourceNone,
			Result:       models.StatusError,
			Message:      "Invalid analysis request received.",
			Summary:      "SystemCheck [N/A]: ERROR (Invalid analysis request received.)",
		},
	}
	if diff := cmp.Diff(expected, outcomes); diff != "" {
		t.Errorf("Nil request outcomes mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeLogsEmptyRequest(t *testing.T) {
	service := NewAnalysisService()

	outcomes := service.AnalyzeLogs(&models.AnalysisRequest{})

	if outcomes == nil {
		t.Fatal("Expected non-nil outcome slice for empty request")
	}
	if len(outcomes) != 0 {
		t.Errorf("Expected no outcomes for empty request, got %d", len(outcomes))
	}
}

func TestAnalyzeLogsEndToEnd(t *testing.T) {
	service := NewAnalysisService()

	req := &models.AnalysisRequest{
		MainJsonTests: "TestA\nTestB",
		BaseLog:       "[INFO] TestA Time elapsed: 1.5s",
	}

	outcomes := service.AnalyzeLogs(req)

	expected := []models.AnalysisOutcome{
		{
			TestCaseName: "TestA",
			LogSource:    models.LogSourceBase,
			Result:       models.StatusPassed,
			Message:      "Passed",
			Summary:      "TestA [base_log]: OK (Passed)",
		},
		{
			TestCaseName: "TestB",
			LogSource:    models.LogSourceBase,
			Result:       models.StatusNotFound,
			Message:      "Not Found",
			Summary:      "TestB [base_log]: NOT OK (Not Found)",
		},
		{
			TestCaseName: "SystemCheck",
			LogSource:    models.LogSourceBefore,
			Result:       models.StatusError,
			Message:      "Log content is missing for log source.",
			Summary:      "SystemCheck [before_log]: ERROR (Log content is missing for log source.)",
		},
		{
			TestCaseName: "SystemCheck",
			LogSource:    models.LogSourceAfter,
			Result:       models.StatusError,
			Message:      "Log content is missing for log source.",
			Summary:      "SystemCheck [after_log]: ERROR (Log content is missing for log source.)",
		},
	}
	if diff := cmp.Diff(expected, outcomes); diff != "" {
		t.Errorf("End-to-end outcomes mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeLogsMissingSourceYieldsSingleError(t *testing.T) {
	service := NewAnalysisService()

	// Many test names, one blank log: still exactly one error per source.
	req := &models.AnalysisRequest{
		MainJsonTests: "t1,t2,t3,t4,t5",
		BaseLog:       "   \n\t  ",
	}

	outcomes := service.AnalyzeLogs(req)

	if len(outcomes) != 3 {
		t.Fatalf("Expected 3 outcomes (one per main source), got %d", len(outcomes))
	}
	for _, outcome := range outcomes {
		if outcome.Result != models.StatusError {
			t.Errorf("Expected Error for %s, got %s", outcome.LogSource, outcome.Result)
		}
		if outcome.TestCaseName != "SystemCheck" {
			t.Errorf("Expected SystemCheck sentinel, got %q", outcome.TestCaseName)
		}
		if outcome.Message != "Log content is missing for log source." {
			t.Errorf("Unexpected message: %q", outcome.Message)
		}
	}
}

func TestAnalyzeLogsPartialFailureIsolation(t *testing.T) {
	service := NewAnalysisService()

	// before_log missing, base and after present: only before degrades.
	req := &models.AnalysisRequest{
		MainJsonTests: "TestA",
		BaseLog:       "[INFO] TestA Time elapsed: 1 s",
		AfterLog:      "[ERROR] TestA Time elapsed: 2 s <<< FAILURE!",
	}

	outcomes := service.AnalyzeLogs(req)

	if len(outcomes) != 3 {
		t.Fatalf("Expected 3 outcomes, got %d", len(outcomes))
	}
	if outcomes[0].Result != models.StatusPassed || outcomes[0].LogSource != models.LogSourceBase {
		t.Errorf("Expected base Passed, got %s on %s", outcomes[0].Result, outcomes[0].LogSource)
	}
	if outcomes[1].Result != models.StatusError || outcomes[1].LogSource != models.LogSourceBefore {
		t.Errorf("Expected before Error, got %s on %s", outcomes[1].Result, outcomes[1].LogSource)
	}
	if outcomes[2].Result != models.StatusFailed || outcomes[2].LogSource != models.LogSourceAfter {
		t.Errorf("Expected after Failed, got %s on %s", outcomes[2].Result, outcomes[2].LogSource)
	}
}

func TestAnalyzeLogsRoutingIsolation(t *testing.T) {
	service := NewAnalysisService()

	executionLine := func(name string) string {
		return "[INFO] " + name + " Time elapsed: 1 s"
	}

	// Every log would match every name; routing must still keep the sets apart.
	req := &models.AnalysisRequest{
		MainJsonTests:     "MainTest",
		ReportJsonTests:   "ReportTest",
		BaseLog:           executionLine("MainTest") + "\n" + executionLine("ReportTest"),
		BeforeLog:         executionLine("MainTest") + "\n" + executionLine("ReportTest"),
		AfterLog:          executionLine("MainTest") + "\n" + executionLine("ReportTest"),
		PostAgentPatchLog: executionLine("MainTest") + "\n" + executionLine("ReportTest"),
	}

	outcomes := service.AnalyzeLogs(req)

	if len(outcomes) != 4 {
		t.Fatalf("Expected 4 outcomes, got %d", len(outcomes))
	}
	for _, outcome := range outcomes {
		switch outcome.TestCaseName {
		case "MainTest":
			if outcome.LogSource == models.LogSourcePostAgentPatch {
				t.Errorf("Main-set test leaked into %s", outcome.LogSource)
			}
		case "ReportTest":
			if outcome.LogSource != models.LogSourcePostAgentPatch {
				t.Errorf("Report-set test leaked into %s", outcome.LogSource)
			}
		default:
			t.Errorf("Unexpected test case name %q", outcome.TestCaseName)
		}
	}
}

func TestAnalyzeLogsBlankTestSetSkipsSources(t *testing.T) {
	service := NewAnalysisService()

	// Report set blank: post_agent_patch_log is never inspected, even though
	// its content is missing.
	req := &models.AnalysisRequest{
		MainJsonTests: "TestA",
		BaseLog:       "[INFO] TestA Time elapsed: 1 s",
		BeforeLog:     "[INFO] TestA Time elapsed: 1 s",
		AfterLog:      "[INFO] TestA Time elapsed: 1 s",
	}

	outcomes := service.AnalyzeLogs(req)

	if len(outcomes) != 3 {
		t.Fatalf("Expected 3 outcomes, got %d", len(outcomes))
	}
	for _, outcome := range outcomes {
		if outcome.LogSource == models.LogSourcePostAgentPatch {
			t.Errorf("Blank report set still produced an outcome for %s", outcome.LogSource)
		}
	}
}

func TestAnalyzeLogsDelimiterOnlyTestSet(t *testing.T) {
	service := NewAnalysisService()

	// A delimiter-only list passes the has-tests gate but normalizes to zero
	// names: present logs yield nothing, missing logs still yield the error.
	req := &models.AnalysisRequest{
		MainJsonTests: ",,;",
		BaseLog:       "[INFO] whatever Time elapsed: 1 s",
		AfterLog:      "[INFO] whatever Time elapsed: 1 s",
	}

	outcomes := service.AnalyzeLogs(req)

	if len(outcomes) != 1 {
		t.Fatalf("Expected 1 outcome, got %d", len(outcomes))
	}
	if outcomes[0].LogSource != models.LogSourceBefore || outcomes[0].Result != models.StatusError {
		t.Errorf("Expected before_log Error, got %s on %s", outcomes[0].Result, outcomes[0].LogSource)
	}
}

func TestAnalyzeLogsDuplicateNamesKept(t *testing.T) {
	service := NewAnalysisService()

	req := &models.AnalysisRequest{
		ReportJsonTests:   "TestA;TestA",
		PostAgentPatchLog: "[INFO] TestA Time elapsed: 1 s",
	}

	outcomes := service.AnalyzeLogs(req)

	if len(outcomes) != 2 {
		t.Fatalf("Expected duplicate name to be classified twice, got %d outcomes", len(outcomes))
	}
	for _, outcome := range outcomes {
		if outcome.TestCaseName != "TestA" || outcome.Result != models.StatusPassed {
			t.Errorf("Expected TestA Passed, got %s %s", outcome.TestCaseName, outcome.Result)
		}
	}
}

func TestAnalyzeLogsOutcomeOrdering(t *testing.T) {
	service := NewAnalysisService()

	logFor := func(names ...string) string {
		var lines []string
		for _, name := range names {
			lines = append(lines, "[INFO] "+name+" Time elapsed: 1 s")
		}
		return strings.Join(lines, "\n")
	}

	req := &models.AnalysisRequest{
		MainJsonTests:     "M1,M2",
		ReportJsonTests:   "R1",
		BaseLog:           logFor("M1", "M2"),
		BeforeLog:         logFor("M1"),
		AfterLog:          logFor("M2"),
		PostAgentPatchLog: logFor("R1"),
	}

	outcomes := service.AnalyzeLogs(req)

	var order []string
	for _, outcome := range outcomes {
		order = append(order, outcome.TestCaseName+"/"+string(outcome.LogSource))
	}

	expected := []string{
		"M1/base_log", "M2/base_log",
		"M1/before_log", "M2/before_log",
		"M1/after_log", "M2/after_log",
		"R1/post_agent_patch_log",
	}
	if diff := cmp.Diff(expected, order); diff != "" {
		t.Errorf("Outcome ordering mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeLogsIdempotent(t *testing.T) {
	service := NewAnalysisService()

	req := &models.AnalysisRequest{
		MainJsonTests:   "TestA,TestB",
		ReportJsonTests: "TestC",
		BaseLog:         "[INFO] TestA Time elapsed: 1 s",
		AfterLog:        "[ERROR] TestB Time elapsed: 2 s <<< ERROR!",
	}

	first := service.AnalyzeLogs(req)
	second := service.AnalyzeLogs(req)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Repeated analysis diverged (-first +second):\n%s", diff)
	}
}
