package orchestrator

// #region imports
import (
	"time"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/aggregate"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/content"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
)

// #endregion

// #region phase

// Phase names one step of the pipeline.
type Phase string

const (
	PhaseAudit       Phase = "audit"
	PhaseEnrichment  Phase = "enrichment"
	PhaseVirtualUser Phase = "virtualUser"
	PhaseRobustness  Phase = "robustness"
	PhaseDeployment  Phase = "deployment"
)

// Phases lists the pipeline in execution order.
var Phases = []Phase{PhaseAudit, PhaseEnrichment, PhaseVirtualUser, PhaseRobustness, PhaseDeployment}

// PhaseStatus is the terminal state of a phase.
type PhaseStatus string

const (
	StatusCompleted PhaseStatus = "COMPLETED"
	StatusFailed    PhaseStatus = "FAILED"
)

// PhaseResult is what one phase did.
type PhaseResult struct {
	Phase      Phase          `json:"phase"`
	Status     PhaseStatus    `json:"status"`
	Verdict    record.Verdict `json:"verdict,omitempty"`
	Score      float64        `json:"score,omitempty"`
	DurationMs int64          `json:"durationMs"`
	Error      string         `json:"error,omitempty"`
}

// #endregion

// #region launch-vote

// VoteCriterion is one item of the independent launch vote.
type VoteCriterion struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
}

// LaunchVote is the majority-rule go/no-go computed directly from records.
type LaunchVote struct {
	Criteria    []VoteCriterion `json:"criteria"`
	Passed      int             `json:"passed"`
	Required    int             `json:"required"`
	LaunchReady bool            `json:"launchReady"`
}

// #endregion

// #region report

// Report is the full outcome of one pipeline run. Assessment and Vote are
// computed independently from the same records and are never reconciled.
type Report struct {
	RunID      string                        `json:"runId"`
	StartedAt  time.Time                     `json:"startedAt"`
	FinishedAt time.Time                     `json:"finishedAt"`
	Parallel   bool                          `json:"parallel"`
	Phases     []PhaseResult                 `json:"phases"`
	Issues     []record.Issue                `json:"issues"`
	Enrichment content.EnrichmentStats       `json:"enrichment"`
	Records    []record.MetricRecord         `json:"records"`
	Assessment aggregate.CompositeAssessment `json:"assessment"`
	Vote       LaunchVote                    `json:"launchVote"`
	MeanScore  float64                       `json:"meanScore"`
	MeanGrade  string                        `json:"meanGrade"`
}

// Failed lists the phases that did not complete.
func (r Report) Failed() []Phase {
	var out []Phase
	for _, p := range r.Phases {
		if p.Status == StatusFailed {
			out = append(out, p.Phase)
		}
	}
	return out
}

// #endregion

// #region config

// Config tunes the orchestrator.
type Config struct {
	Parallel bool              `yaml:"parallel"` // run the three post-enrichment producers concurrently
	Glossary map[string]string `yaml:"glossary"` // extra enrichment translations
}

// DefaultConfig runs sequentially with the built-in glossary.
func DefaultConfig() Config {
	return Config{}
}

// #endregion
