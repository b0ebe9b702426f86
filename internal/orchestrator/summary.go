package orchestrator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/aggregate"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
)

// #region summary

// ProducerSummary is one producer's line in the consolidated summary.
type ProducerSummary struct {
	ProducerID record.ProducerID `json:"producerId"`
	Verdict    record.Verdict    `json:"producerVerdict"`
	Score      float64           `json:"readinessScore"`
	Headline   float64           `json:"headlineScore"`
	Issues     int               `json:"issues"`
	Flags      map[string]bool   `json:"flags,omitempty"` // launch criteria the producer evaluated itself
	Timestamp  time.Time         `json:"timestamp"`
}

// Summary is the consolidated JSON written after each run. Both verdicts
// are reported side by side.
type Summary struct {
	RunID        string              `json:"runId"`
	GeneratedAt  time.Time           `json:"generatedAt"`
	Phases       []PhaseResult       `json:"phases"`
	Producers    []ProducerSummary   `json:"producers"`
	Aggregator   AggregatorVerdict   `json:"aggregator"`
	Orchestrator OrchestratorVerdict `json:"orchestrator"`
	Issues       []record.Issue      `json:"issues"`
}

// AggregatorVerdict is the weighted view with blockers.
type AggregatorVerdict struct {
	WeightedScore   float64             `json:"weightedScore"`
	Grade           string              `json:"grade"`
	Ready           bool                `json:"ready"`
	LaunchChecklist map[string]bool     `json:"launchChecklist"`
	Blockers        []string            `json:"blockers"`
	Risks           []string            `json:"risks"`
	DataGaps        []record.ProducerID `json:"dataGaps"`
	Recommendations []string            `json:"recommendations"`
}

// OrchestratorVerdict is the majority vote with the equal-weight grade.
type OrchestratorVerdict struct {
	LaunchReady bool            `json:"launchReady"`
	Passed      int             `json:"criteriaPassed"`
	Required    int             `json:"criteriaRequired"`
	Criteria    []VoteCriterion `json:"criteria"`
	MeanScore   float64         `json:"meanScore"`
	Grade       string          `json:"grade"`
}

// NewSummary condenses a report.
func NewSummary(rep Report) Summary {
	s := Summary{
		RunID:       rep.RunID,
		GeneratedAt: rep.FinishedAt,
		Phases:      rep.Phases,
		Producers:   make([]ProducerSummary, 0, len(rep.Records)),
		Aggregator: AggregatorVerdict{
			WeightedScore:   rep.Assessment.WeightedScore,
			Grade:           rep.Assessment.Grade,
			Ready:           rep.Assessment.Ready,
			LaunchChecklist: rep.Assessment.LaunchChecklist,
			Blockers:        rep.Assessment.BlockerReasons(),
			Risks:           rep.Assessment.Risks,
			DataGaps:        rep.Assessment.DataGaps,
			Recommendations: rep.Assessment.Recommendations,
		},
		Orchestrator: OrchestratorVerdict{
			LaunchReady: rep.Vote.LaunchReady,
			Passed:      rep.Vote.Passed,
			Required:    rep.Vote.Required,
			Criteria:    rep.Vote.Criteria,
			MeanScore:   rep.MeanScore,
			Grade:       rep.MeanGrade,
		},
		Issues: rep.Issues,
	}
	if s.Aggregator.DataGaps == nil {
		s.Aggregator.DataGaps = []record.ProducerID{}
	}
	for _, r := range rep.Records {
		s.Producers = append(s.Producers, ProducerSummary{
			ProducerID: r.ProducerID,
			Verdict:    r.ProducerVerdict,
			Score:      r.Value(record.KeyReadinessScore),
			Headline:   aggregate.Headline(r),
			Issues:     len(r.Issues),
			Flags:      r.Flags,
			Timestamp:  r.Timestamp,
		})
	}
	return s
}

// WriteSummary writes the consolidated summary of rep to path.
func WriteSummary(path string, rep Report) error {
	data, err := json.MarshalIndent(NewSummary(rep), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create summary dir: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

// #endregion
