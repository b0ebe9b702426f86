package aggregate

import (
	"fmt"
	"math"
	"time"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
)

// #region weights
// Weights is the composite weight of each producer's headline score.
type Weights struct {
	Audit       float64 `yaml:"audit" json:"audit"`
	VirtualUser float64 `yaml:"virtual_user" json:"virtualUser"`
	Robustness  float64 `yaml:"robustness" json:"robustness"`
	Deployment  float64 `yaml:"deployment" json:"deployment"`
}

// DefaultWeights returns content 0.30, user testing 0.25, robustness 0.25, deployment 0.20.
func DefaultWeights() Weights {
	return Weights{Audit: 0.30, VirtualUser: 0.25, Robustness: 0.25, Deployment: 0.20}
}

// Of returns the weight for id.
func (w Weights) Of(id record.ProducerID) float64 {
	switch id {
	case record.Audit:
		return w.Audit
	case record.VirtualUser:
		return w.VirtualUser
	case record.Robustness:
		return w.Robustness
	case record.Deployment:
		return w.Deployment
	}
	return 0
}

// Sum returns the total weight.
func (w Weights) Sum() float64 {
	return w.Audit + w.VirtualUser + w.Robustness + w.Deployment
}
// #endregion weights

// #region config
// Config holds the aggregator's weights and checklist thresholds.
type Config struct {
	Weights         Weights `yaml:"weights"`
	MinReadyScore   float64 `yaml:"min_ready_score"`  // weighted score required for ready
	MinQuality      float64 `yaml:"min_quality"`      // content: audit.qualityScore
	MinHindi        float64 `yaml:"min_hindi"`        // content and blocker: audit.hindiCompleteness
	MinPerformance  float64 `yaml:"min_performance"`  // performance: virtualUser.performanceScore
	ChecklistQuorum int     `yaml:"checklist_quorum"` // checklist items needed for overall
}

// DefaultConfig returns the launch thresholds.
func DefaultConfig() Config {
	return Config{
		Weights:         DefaultWeights(),
		MinReadyScore:   80,
		MinQuality:      80,
		MinHindi:        90,
		MinPerformance:  75,
		ChecklistQuorum: 4,
	}
}

// Validate rejects weights that do not sum to 1.
func (c Config) Validate() error {
	if math.Abs(c.Weights.Sum()-1) > 1e-9 {
		return fmt.Errorf("aggregate weights sum to %.4f, want 1", c.Weights.Sum())
	}
	for _, w := range []float64{c.Weights.Audit, c.Weights.VirtualUser, c.Weights.Robustness, c.Weights.Deployment} {
		if w < 0 {
			return fmt.Errorf("aggregate weight %.4f is negative", w)
		}
	}
	if c.ChecklistQuorum < 1 || c.ChecklistQuorum > len(ChecklistItems) {
		return fmt.Errorf("checklist quorum %d out of range 1..%d", c.ChecklistQuorum, len(ChecklistItems))
	}
	return nil
}
// #endregion config

// #region checklist
// Launch checklist items.
const (
	ItemContent       = "content"
	ItemFunctionality = "functionality"
	ItemPerformance   = "performance"
	ItemSecurity      = "security"
	ItemDeployment    = "deployment"
	ItemOverall       = "overall"
)

// ChecklistItems lists the five voting items in report order.
var ChecklistItems = []string{ItemContent, ItemFunctionality, ItemPerformance, ItemSecurity, ItemDeployment}
// #endregion checklist

// #region blocker
// BlockerType enumerates the hard launch vetoes.
type BlockerType string

const (
	BlockerCriticalBugs      BlockerType = "critical_bugs"
	BlockerHindiCompleteness BlockerType = "hindi_completeness"
	BlockerDeployment        BlockerType = "deployment_not_ready"
)

// Blocker is one detected veto condition.
type Blocker struct {
	Type   BlockerType `json:"type"`
	Reason string      `json:"reason"`
}
// #endregion blocker

// #region composite-assessment
// CompositeAssessment is the aggregator's view over the current records.
// It is recomputed on every call and never stored as input.
type CompositeAssessment struct {
	WeightedScore   float64                              `json:"weightedScore"`
	Grade           string                               `json:"grade"`
	LaunchChecklist map[string]bool                      `json:"launchChecklist"`
	Blockers        []Blocker                            `json:"blockers"`
	Risks           []string                             `json:"risks"`
	Ready           bool                                 `json:"ready"`
	DataGaps        []record.ProducerID                  `json:"dataGaps,omitempty"`
	Contributions   map[record.ProducerID]float64        `json:"contributions"`
	Verdicts        map[record.ProducerID]record.Verdict `json:"verdicts"`
	Recommendations []string                             `json:"recommendations"`
	GeneratedAt     time.Time                            `json:"generatedAt"`
}

// BlockerReasons returns the blocker strings in detection order.
func (c CompositeAssessment) BlockerReasons() []string {
	out := make([]string, len(c.Blockers))
	for i, b := range c.Blockers {
		out[i] = b.Reason
	}
	return out
}
// #endregion composite-assessment
