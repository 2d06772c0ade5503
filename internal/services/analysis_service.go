package services

import (
	"fmt"
	"strings"

	"github.com/runcheck/backend/internal/logger"
	"github.com/runcheck/backend/internal/models"
)

const (
	missingLogMessage     = "Log content is missing for log source."
	invalidRequestMessage = "Invalid analysis request received."
)

// AnalysisService verifies, from raw runner logs, whether the requested test
// cases executed and how they ended. It holds no state: every call is an
// independent, synchronous pass over its inputs.
type AnalysisService struct{}

func NewAnalysisService() *AnalysisService {
	return &AnalysisService{}
}

// AnalyzeLogs walks the routing table and verifies each test set against the
// log sources mapped to it. Outcomes are concatenated in routing order; that
// ordering is part of the response contract. A nil request is the single
// fatal condition and yields exactly one SystemCheck outcome.
func (s *AnalysisService) AnalyzeLogs(req *models.AnalysisRequest) []models.AnalysisOutcome {
	if req == nil {
		logger.Warn("Rejecting nil analysis request", nil)
		return []models.AnalysisOutcome{newSystemErrorOutcome(models.LogSourceNone, invalidRequestMessage)}
	}

	// Non-nil so an empty analysis serializes as [] rather than null.
	allResults := make([]models.AnalysisOutcome, 0)

	for _, route := range models.AnalysisRouting {
		raw := req.TestsFor(route.Set)
		if !HasTestCases(raw) {
			continue
		}

		testCases := ParseTestCases(raw)
		for _, source := range route.Sources {
			allResults = append(allResults, s.runTestSet(testCases, req.LogContentFor(source), source)...)
		}
	}

	logger.Info("Log analysis completed", map[string]interface{}{
		"component": "analysis_service",
		"outcomes":  len(allResults),
	})
	return allResults
}

// runTestSet verifies every test case, in order, against one log source. A
// missing or blank log short-circuits into a single SystemCheck error so the
// remaining sources are still analyzed; an empty test list is not an error
// at this level.
func (s *AnalysisService) runTestSet(testCases []string, logContent string, source models.LogSource) []models.AnalysisOutcome {
	if strings.TrimSpace(logContent) == "" {
		logger.Warn("Log content missing for source", map[string]interface{}{
			"component":  "analysis_service",
			"log_source": string(source),
		})
		return []models.AnalysisOutcome{newSystemErrorOutcome(source, missingLogMessage)}
	}

	if len(testCases) == 0 {
		return nil
	}

	results := make([]models.AnalysisOutcome, 0, len(testCases))
	for _, name := range testCases {
		results = append(results, newOutcome(name, MatchExecution(name, logContent), source))
	}
	return results
}

func newOutcome(testCaseName string, status models.OutcomeStatus, source models.LogSource) models.AnalysisOutcome {
	var message, verdict string
	switch status {
	case models.StatusPassed:
		message, verdict = "Passed", "OK"
	case models.StatusFailed:
		message, verdict = "Failed", "NOT OK"
	default:
		message, verdict = "Not Found", "NOT OK"
	}

	return models.AnalysisOutcome{
		TestCaseName: testCaseName,
		LogSource:    source,
		Result:       status,
		Message:      message,
		Summary:      fmt.Sprintf("%s [%s]: %s (%s)", testCaseName, source, verdict, message),
	}
}

func newSystemErrorOutcome(source models.LogSource, errorMessage string) models.AnalysisOutcome {
	return models.AnalysisOutcome{
		TestCaseName: models.SystemCheckName,
		LogSource:    source,
		Result:       models.StatusError,
		Message:      errorMessage,
		Summary:      fmt.Sprintf("%s [%s]: ERROR (%s)", models.SystemCheckName, source, errorMessage),
	}
}
