package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/runcheck/backend/internal/models"
)

const (
	MetricsNamespace = "runcheck"
)

var (
	analysesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "analyses_total",
		Help:      "Count of analysis requests processed",
	})

	outcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "outcomes_total",
		Help:      "Count of per-test-case outcomes by result and log source",
	}, []string{
		"result",
		"log_source",
	})

	analysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: MetricsNamespace,
		Name:      "analysis_duration_seconds",
		Help:      "Duration of analysis requests",
		Buckets:   prometheus.DefBuckets,
	})
)

// RecordAnalysis tracks one completed analysis run and its outcomes.
func RecordAnalysis(outcomes []models.AnalysisOutcome, duration time.Duration) {
	analysesTotal.Inc()
	analysisDuration.Observe(duration.Seconds())
	for _, outcome := range outcomes {
		outcomesTotal.WithLabelValues(string(outcome.Result), string(outcome.LogSource)).Inc()
	}
}
