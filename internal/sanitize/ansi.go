// Package sanitize strips terminal escape sequences from captured runner
// logs. Raw CI output frequently carries ANSI color codes that would land in
// the middle of a test case name and defeat matching.
package sanitize

import (
	"github.com/acarl005/stripansi"

	"github.com/runcheck/backend/internal/models"
)

// LogContent removes ANSI escape sequences from one log blob.
func LogContent(content string) string {
	return stripansi.Strip(content)
}

// Request returns a copy of the request with every log field scrubbed. The
// test lists are left untouched; they are operator input, not terminal
// capture.
func Request(req models.AnalysisRequest) models.AnalysisRequest {
	req.BaseLog = stripansi.Strip(req.BaseLog)
	req.BeforeLog = stripansi.Strip(req.BeforeLog)
	req.AfterLog = stripansi.Strip(req.AfterLog)
	req.PostAgentPatchLog = stripansi.Strip(req.PostAgentPatchLog)
	return req
}
