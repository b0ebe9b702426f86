package logging

import "time"

// #region assessment-entry
// AssessmentEntry is a single row in the assessment_log table: one
// pipeline run's two verdicts and what drove them.
type AssessmentEntry struct {
	ID            int64
	RunID         string
	WeightedScore float64
	Grade         string
	Ready         bool // aggregator verdict
	LaunchReady   bool // independent majority vote
	MeanScore     float64
	MeanGrade     string
	Blockers      []string
	DataGaps      []string
	SummaryJSON   string // consolidated summary as written to disk
	CreatedAt     time.Time
}
// #endregion assessment-entry
