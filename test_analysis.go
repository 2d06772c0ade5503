package main

import (
	"fmt"

	"github.com/runcheck/backend/internal/models"
	"github.com/runcheck/backend/internal/report"
	"github.com/runcheck/backend/internal/services"
)

func main() {
	fmt.Println("Testing analysis engine...")

	analysisService := services.NewAnalysisService()

	// Sample runner output: one pass, one failure, before log missing
	baseLog := "[INFO] Running shouldProcessOrder Time elapsed: 0.42 s\n" +
		"[INFO] Running shouldRejectInvalidOrder Time elapsed: 1.1 s <<< FAILURE!\n"
	afterLog := "[INFO] Running shouldProcessOrder Time elapsed: 0.39 s\n"

	req := &models.AnalysisRequest{
		BaseLog:           baseLog,
		AfterLog:          afterLog,
		PostAgentPatchLog: "[INFO] Running shouldEmitReport Time elapsed: 2 s\n",
		MainJsonTests:     "shouldProcessOrder, shouldRejectInvalidOrder",
		ReportJsonTests:   "shouldEmitReport",
	}

	fmt.Println("1. Running full analysis...")
	outcomes := analysisService.AnalyzeLogs(req)
	for _, outcome := range outcomes {
		fmt.Printf("   %s\n", outcome.Summary)
	}

	fmt.Println("2. Tallying outcomes...")
	totals := report.Tally(outcomes)
	fmt.Printf("   passed=%d failed=%d notfound=%d errors=%d\n",
		totals.Passed, totals.Failed, totals.NotFound, totals.Errors)

	fmt.Println("3. Testing nil request handling...")
	invalid := analysisService.AnalyzeLogs(nil)
	if len(invalid) == 1 && invalid[0].Result == models.StatusError {
		fmt.Println("✅ Nil request yields single SystemCheck error")
	} else {
		fmt.Printf("❌ Unexpected nil request outcomes: %+v\n", invalid)
	}
}
