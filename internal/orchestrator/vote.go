package orchestrator

import (
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/aggregate"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
)

// #region vote-thresholds

const (
	voteMinQuality = 80.0
	voteMinHindi   = 90.0
	voteMinSuccess = 95.0
	voteQuorum     = 4
)

// #endregion

// #region launch-vote

// Vote runs the independent launch vote over whatever records exist. It
// shares no thresholds with the aggregator and has no blocker veto.
// Verdict criteria match any verdict containing "READY", NOT_READY included.
func Vote(records []record.MetricRecord) LaunchVote {
	by := index(records)
	audit := by[record.Audit]

	v := LaunchVote{
		Criteria: []VoteCriterion{
			{Name: "audit.qualityScore>=80", Passed: audit.Value(record.KeyQualityScore) >= voteMinQuality},
			{Name: "audit.hindiCompleteness>=90", Passed: audit.Value(record.KeyHindiCompleteness) >= voteMinHindi},
			{Name: "virtualUser.successRate>=95", Passed: by[record.VirtualUser].Value(record.KeySuccessRate) >= voteMinSuccess},
			{Name: "robustness.verdict~READY", Passed: by[record.Robustness].ProducerVerdict.ContainsReady()},
			{Name: "deployment.verdict~READY", Passed: by[record.Deployment].ProducerVerdict.ContainsReady()},
		},
		Required: voteQuorum,
	}
	for _, c := range v.Criteria {
		if c.Passed {
			v.Passed++
		}
	}
	v.LaunchReady = v.Passed >= v.Required
	return v
}

// #endregion

// #region mean-score

// MeanScore is the equal-weight mean of the four headline scores. A missing
// producer counts as zero and still takes its share of the denominator.
func MeanScore(records []record.MetricRecord) (float64, string) {
	by := index(records)
	var sum float64
	for _, id := range record.Producers {
		if r, ok := by[id]; ok {
			sum += aggregate.Headline(r)
		}
	}
	mean := sum / float64(len(record.Producers))
	return mean, aggregate.Grade(mean)
}

// #endregion

func index(records []record.MetricRecord) map[record.ProducerID]record.MetricRecord {
	by := make(map[record.ProducerID]record.MetricRecord, len(records))
	for _, r := range records {
		by[r.ProducerID] = r
	}
	return by
}
