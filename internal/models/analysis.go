package models

// OutcomeStatus is the final classification of one test case against one log.
type OutcomeStatus string

const (
	StatusNotFound OutcomeStatus = "NotFound"
	StatusFailed   OutcomeStatus = "Failed"
	StatusPassed   OutcomeStatus = "Passed"
	StatusError    OutcomeStatus = "Error"
)

// LogSource identifies which pipeline stage a captured runner log came from.
type LogSource string

const (
	LogSourceBase           LogSource = "base_log"
	LogSourceBefore         LogSource = "before_log"
	LogSourceAfter          LogSource = "after_log"
	LogSourcePostAgentPatch LogSource = "post_agent_patch_log"

	// LogSourceNone is reported only when the request itself is invalid.
	LogSourceNone LogSource = "N/A"
)

type TestSet string

const (
	TestSetMain   TestSet = "main"
	TestSetReport TestSet = "report"
)

// SystemCheckName is the testCaseName carried by every Error outcome.
const SystemCheckName = "SystemCheck"

// AnalysisRequest holds the four pipeline stage logs and the two test lists.
// All fields are optional text blobs; absent and blank are equivalent.
type AnalysisRequest struct {
	BaseLog           string `json:"baseLog"`
	BeforeLog         string `json:"beforeLog"`
	AfterLog          string `json:"afterLog"`
	PostAgentPatchLog string `json:"postAgentPatchLog"`

	MainJsonTests   string `json:"mainJsonTests"`
	ReportJsonTests string `json:"reportJsonTests"`
}

// TestsFor returns the raw delimited test list belonging to a test set.
func (r *AnalysisRequest) TestsFor(set TestSet) string {
	switch set {
	case TestSetMain:
		return r.MainJsonTests
	case TestSetReport:
		return r.ReportJsonTests
	default:
		return ""
	}
}

// LogContentFor returns the raw captured content of a log source.
func (r *AnalysisRequest) LogContentFor(source LogSource) string {
	switch source {
	case LogSourceBase:
		return r.BaseLog
	case LogSourceBefore:
		return r.BeforeLog
	case LogSourceAfter:
		return r.AfterLog
	case LogSourcePostAgentPatch:
		return r.PostAgentPatchLog
	default:
		return ""
	}
}

// TestSetRoute binds one test set to the ordered log sources it is verified
// against.
type TestSetRoute struct {
	Set     TestSet
	Sources []LogSource
}

// AnalysisRouting is the fixed routing table. The order of routes and of the
// sources inside each route is an output-ordering contract: consumers rely on
// outcomes being grouped by log source within each test-set block.
var AnalysisRouting = []TestSetRoute{
	{
		Set:     TestSetMain,
		Sources: []LogSource{LogSourceBase, LogSourceBefore, LogSourceAfter},
	},
	{
		Set:     TestSetReport,
		Sources: []LogSource{LogSourcePostAgentPatch},
	},
}

// AnalysisOutcome is one verification verdict: either a (test case, log
// source) classification or a SystemCheck error scoped to a log source.
type AnalysisOutcome struct {
	TestCaseName string        `json:"testCaseName"`
	LogSource    LogSource     `json:"logSource"`
	Result       OutcomeStatus `json:"result"`
	Message      string        `json:"message"`
	Summary      string        `json:"summary"`
}

// IsBlocking reports whether the outcome should fail a verification run
// (Failed and Error block; NotFound is informational).
func (o AnalysisOutcome) IsBlocking() bool {
	return o.Result == StatusFailed || o.Result == StatusError
}
