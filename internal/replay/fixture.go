package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/aggregate"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: a record
// set plus what assessing it should yield.
type Fixture struct {
	Description string                  `json:"description"`
	Config      *FixtureAggregateConfig `json:"aggregate_config,omitempty"`
	Records     []record.MetricRecord   `json:"records"`
	Expected    FixtureExpected         `json:"expected"`
}

// FixtureAggregateConfig overrides aggregator thresholds for a fixture.
type FixtureAggregateConfig struct {
	Weights       *aggregate.Weights `json:"weights,omitempty"`
	MinReadyScore *float64           `json:"min_ready_score,omitempty"`
}

// FixtureExpected holds the expected outcome. Nil and empty fields are not checked.
type FixtureExpected struct {
	WeightedScore *float64            `json:"weighted_score,omitempty"`
	Grade         string              `json:"grade,omitempty"`
	Ready         *bool               `json:"ready,omitempty"`
	Blockers      *int                `json:"blockers,omitempty"`
	DataGaps      []record.ProducerID `json:"data_gaps,omitempty"`
	LaunchReady   *bool               `json:"launch_ready,omitempty"`
	VotesPassed   *int                `json:"votes_passed,omitempty"`
	MeanScore     *float64            `json:"mean_score,omitempty"`
	MeanGrade     string              `json:"mean_grade,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	for i, r := range f.Records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("fixture %s record %d: %w", path, i, err)
		}
	}
	return &f, nil
}

// WriteFixture writes f as indented JSON.
func WriteFixture(path string, f Fixture) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}

// AggregateConfig applies the fixture's overrides to base.
func (f *Fixture) AggregateConfig(base aggregate.Config) aggregate.Config {
	if f.Config == nil {
		return base
	}
	if f.Config.Weights != nil {
		base.Weights = *f.Config.Weights
	}
	if f.Config.MinReadyScore != nil {
		base.MinReadyScore = *f.Config.MinReadyScore
	}
	return base
}

// #endregion fixture-loader
