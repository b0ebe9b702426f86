package record

import "time"

// #region producer-id

// ProducerID names one of the four metric producers.
type ProducerID string

const (
	Audit       ProducerID = "audit"
	VirtualUser ProducerID = "virtualUser"
	Robustness  ProducerID = "robustness"
	Deployment  ProducerID = "deployment"
)

// Producers lists every producer in pipeline order.
var Producers = []ProducerID{Audit, VirtualUser, Robustness, Deployment}

// Valid reports whether id is one of the known producers.
func (id ProducerID) Valid() bool {
	for _, p := range Producers {
		if p == id {
			return true
		}
	}
	return false
}

// #endregion producer-id

// #region severity

// Severity classifies an issue.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Valid reports whether s is a known severity.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// #endregion severity

// #region verdict

// Verdict is a producer's own readiness classification.
type Verdict string

const (
	VerdictReady           Verdict = "READY"
	VerdictNeedsMinorFixes Verdict = "NEEDS_MINOR_FIXES"
	VerdictNeedsMajorFixes Verdict = "NEEDS_MAJOR_FIXES"
	VerdictNotReady        Verdict = "NOT_READY"
)

// #endregion verdict

// #region issue

// Issue is a single finding attached to a record.
type Issue struct {
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Check       string   `json:"check,omitempty"` // originating check, empty for producer-level issues
}

// #endregion issue

// #region metric-record

// MetricRecord is the immutable result of one producer run.
type MetricRecord struct {
	ProducerID      ProducerID         `json:"producerId"`
	Timestamp       time.Time          `json:"timestamp"`
	RunID           string             `json:"runId,omitempty"`
	Summary         map[string]float64 `json:"summary"`
	Flags           map[string]bool    `json:"flags,omitempty"`
	Labels          map[string]string  `json:"labels,omitempty"`
	ContentGaps     []string           `json:"contentGaps,omitempty"`
	Issues          []Issue            `json:"issues"`
	ProducerVerdict Verdict            `json:"producerVerdict"`
}

// #endregion metric-record
