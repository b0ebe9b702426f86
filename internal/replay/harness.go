package replay

import (
	"fmt"
	"math"
	"slices"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/aggregate"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/orchestrator"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/producer"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
)

const scoreTolerance = 1e-6

// #region types

// VerdictDrift is a record whose stored verdict differs from the verdict
// recomputed from its own summary and issues.
type VerdictDrift struct {
	ProducerID record.ProducerID
	Stored     record.Verdict
	Recomputed record.Verdict
}

// Result is the outcome of assessing a fixture's records offline.
type Result struct {
	Assessment aggregate.CompositeAssessment
	Vote       orchestrator.LaunchVote
	MeanScore  float64
	MeanGrade  string
	Drift      []VerdictDrift
}

// #endregion types

// #region replay

// Replay runs the aggregator, the launch vote and the mean-score grade over
// the fixture's records, and re-derives every producer verdict.
func Replay(f Fixture, aggCfg aggregate.Config, prodCfg producer.Config) Result {
	res := Result{
		Assessment: aggregate.NewAggregator(f.AggregateConfig(aggCfg)).Aggregate(f.Records),
		Vote:       orchestrator.Vote(f.Records),
	}
	res.MeanScore, res.MeanGrade = orchestrator.MeanScore(f.Records)
	for _, r := range f.Records {
		v, err := producer.Verdict(r, prodCfg)
		if err != nil || v == r.ProducerVerdict {
			continue
		}
		res.Drift = append(res.Drift, VerdictDrift{ProducerID: r.ProducerID, Stored: r.ProducerVerdict, Recomputed: v})
	}
	return res
}

// Check compares res against the fixture's expectations and verdict drift.
// It returns one line per mismatch.
func Check(f Fixture, res Result) []string {
	var out []string
	e := f.Expected
	a := res.Assessment

	if e.WeightedScore != nil && math.Abs(*e.WeightedScore-a.WeightedScore) > scoreTolerance {
		out = append(out, fmt.Sprintf("weighted_score: want %.4f, got %.4f", *e.WeightedScore, a.WeightedScore))
	}
	if e.Grade != "" && e.Grade != a.Grade {
		out = append(out, fmt.Sprintf("grade: want %s, got %s", e.Grade, a.Grade))
	}
	if e.Ready != nil && *e.Ready != a.Ready {
		out = append(out, fmt.Sprintf("ready: want %v, got %v", *e.Ready, a.Ready))
	}
	if e.Blockers != nil && *e.Blockers != len(a.Blockers) {
		out = append(out, fmt.Sprintf("blockers: want %d, got %d %v", *e.Blockers, len(a.Blockers), a.BlockerReasons()))
	}
	if e.DataGaps != nil && !slices.Equal(e.DataGaps, a.DataGaps) {
		out = append(out, fmt.Sprintf("data_gaps: want %v, got %v", e.DataGaps, a.DataGaps))
	}
	if e.LaunchReady != nil && *e.LaunchReady != res.Vote.LaunchReady {
		out = append(out, fmt.Sprintf("launch_ready: want %v, got %v", *e.LaunchReady, res.Vote.LaunchReady))
	}
	if e.VotesPassed != nil && *e.VotesPassed != res.Vote.Passed {
		out = append(out, fmt.Sprintf("votes_passed: want %d, got %d", *e.VotesPassed, res.Vote.Passed))
	}
	if e.MeanScore != nil && math.Abs(*e.MeanScore-res.MeanScore) > scoreTolerance {
		out = append(out, fmt.Sprintf("mean_score: want %.4f, got %.4f", *e.MeanScore, res.MeanScore))
	}
	if e.MeanGrade != "" && e.MeanGrade != res.MeanGrade {
		out = append(out, fmt.Sprintf("mean_grade: want %s, got %s", e.MeanGrade, res.MeanGrade))
	}
	for _, d := range res.Drift {
		out = append(out, fmt.Sprintf("%s verdict drift: stored %s, recomputed %s", d.ProducerID, d.Stored, d.Recomputed))
	}
	return out
}

// #endregion replay

// #region export

// Export builds a fixture from records, with expectations taken from
// assessing them now.
func Export(description string, records []record.MetricRecord, aggCfg aggregate.Config) Fixture {
	a := aggregate.NewAggregator(aggCfg).Aggregate(records)
	v := orchestrator.Vote(records)
	mean, meanGrade := orchestrator.MeanScore(records)
	blockers := len(a.Blockers)
	gaps := a.DataGaps
	if gaps == nil {
		gaps = []record.ProducerID{}
	}
	return Fixture{
		Description: description,
		Records:     records,
		Expected: FixtureExpected{
			WeightedScore: &a.WeightedScore,
			Grade:         a.Grade,
			Ready:         &a.Ready,
			Blockers:      &blockers,
			DataGaps:      gaps,
			LaunchReady:   &v.LaunchReady,
			VotesPassed:   &v.Passed,
			MeanScore:     &mean,
			MeanGrade:     meanGrade,
		},
	}
}

// #endregion export
