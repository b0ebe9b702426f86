package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/aggregate"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
)

func TestObserveRecords(t *testing.T) {
	c := NewCollector()
	c.ObserveRecords([]record.MetricRecord{{
		ProducerID:      record.Robustness,
		Timestamp:       time.Now(),
		Summary:         map[string]float64{record.KeyReadinessScore: 80},
		Issues:          []record.Issue{{Severity: record.SeverityCritical}, {Severity: record.SeverityLow}},
		ProducerVerdict: record.VerdictNeedsMinorFixes,
	}})

	assert.Equal(t, 80.0, testutil.ToFloat64(c.producerScore.WithLabelValues("robustness")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.producerVerdict.WithLabelValues("robustness", "NEEDS_MINOR_FIXES")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.producerVerdict.WithLabelValues("robustness", "READY")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.producerIssues.WithLabelValues("robustness", "critical")))

	c.ObserveRecords(nil)
	assert.Equal(t, 0, testutil.CollectAndCount(c.producerScore))
}

func TestObserveAssessment(t *testing.T) {
	c := NewCollector()
	a := aggregate.CompositeAssessment{
		WeightedScore:   91.5,
		Ready:           true,
		Blockers:        []aggregate.Blocker{},
		DataGaps:        []record.ProducerID{record.Audit},
		LaunchChecklist: map[string]bool{aggregate.ItemContent: true, aggregate.ItemSecurity: false},
	}
	c.ObserveAssessment(a, false, 88)
	c.PhaseFailed("deployment")

	assert.Equal(t, 91.5, testutil.ToFloat64(c.weightedScore))
	assert.Equal(t, 88.0, testutil.ToFloat64(c.meanScore))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ready))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.launchReady))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.dataGaps))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.checklist.WithLabelValues("security")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.phaseFailures.WithLabelValues("deployment")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.runs))
}

func TestWriteTextfile(t *testing.T) {
	c := NewCollector()
	c.ObserveAssessment(aggregate.CompositeAssessment{WeightedScore: 77}, true, 70)

	path := filepath.Join(t.TempDir(), "readiness.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.True(t, strings.Contains(out, "readiness_weighted_score 77"), out)
	assert.Contains(t, out, "readiness_launch_ready 1")
}

func TestWriteTextfile_BadPath(t *testing.T) {
	err := NewCollector().WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"))
	assert.Error(t, err)
}
