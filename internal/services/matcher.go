package services

import (
	"fmt"
	"regexp"

	"github.com/runcheck/backend/internal/models"
)

// executionPatternTemplate proves that a test case actually ran: a bracketed
// log level, the quoted test name and a "Time elapsed: <n> s" marker must
// appear in that order. Gap tokens are non-greedy and stop at line
// boundaries, so an unrelated "Time elapsed:" further down the log is never
// pulled into the match; the single \s after the level token and the \s*
// around the elapsed number may cross a line break.
const executionPatternTemplate = `(?i).*?\[(INFO|ERROR|WARN|DEBUG|TRACE)]\s.*?%s.*?Time elapsed:\s*(\d*\.?\d+|\.\d+)\s*s.*`

// failureSuffixPattern downgrades an executed test to Failed: one to three
// angle brackets, a space, then FAILURE! or ERROR!.
var failureSuffixPattern = regexp.MustCompile(`(?i)(<{1,3})\s(FAILURE|ERROR)!`)

// MatchExecution classifies one test case against one log text. The test
// name is embedded literally (never as a sub-pattern), so names containing
// regex metacharacters are safe. Returns StatusNotFound when no execution
// line exists, StatusFailed when the matched span carries a failure suffix,
// StatusPassed otherwise.
func MatchExecution(testCaseName, logContent string) models.OutcomeStatus {
	pattern := regexp.MustCompile(fmt.Sprintf(executionPatternTemplate, regexp.QuoteMeta(testCaseName)))

	loc := pattern.FindStringIndex(logContent)
	if loc == nil {
		return models.StatusNotFound
	}

	// Only the matched span is inspected, so a failure suffix on an
	// unrelated line cannot leak into this test's verdict.
	if failureSuffixPattern.MatchString(logContent[loc[0]:loc[1]]) {
		return models.StatusFailed
	}
	return models.StatusPassed
}
