package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/runcheck/backend/internal/logger"
	"github.com/runcheck/backend/internal/metrics"
	"github.com/runcheck/backend/internal/models"
	"github.com/runcheck/backend/internal/sanitize"
	"github.com/runcheck/backend/internal/services"
)

type AnalysisController struct {
	analysisService *services.AnalysisService
	stripANSI       bool
}

func NewAnalysisController(analysisService *services.AnalysisService) *AnalysisController {
	return &AnalysisController{
		analysisService: analysisService,
		stripANSI:       os.Getenv("ANALYZER_STRIP_ANSI") == "true",
	}
}

// RunAnalysis verifies the submitted test cases against the submitted logs
// and returns one outcome per (test case, log source) pair.
//
// A body that cannot be parsed is treated the same as a missing request: the
// response is still 200 with a single SystemCheck error outcome, so callers
// always get the outcome list shape.
func (ac *AnalysisController) RunAnalysis(c *gin.Context) {
	requestID := c.GetString("requestID")
	start := time.Now()

	var req models.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WithRequest(requestID).WithField("bind_error", err.Error()).
			Warn("Analysis request body could not be parsed")
		outcomes := ac.analysisService.AnalyzeLogs(nil)
		metrics.RecordAnalysis(outcomes, time.Since(start))
		c.JSON(http.StatusOK, outcomes)
		return
	}

	if ac.stripANSI {
		req = sanitize.Request(req)
	}

	outcomes := ac.analysisService.AnalyzeLogs(&req)
	duration := time.Since(start)
	metrics.RecordAnalysis(outcomes, duration)

	logger.WithRequest(requestID).WithField("outcomes", len(outcomes)).
		Info("Analysis request completed")

	c.JSON(http.StatusOK, outcomes)
}
