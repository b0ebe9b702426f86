package record

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyVerdict_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  Verdict
	}{
		{100, VerdictReady},
		{90, VerdictReady},
		{89.999, VerdictNeedsMinorFixes},
		{75, VerdictNeedsMinorFixes},
		{74.999, VerdictNeedsMajorFixes},
		{60, VerdictNeedsMajorFixes},
		{59.999, VerdictNotReady},
		{0, VerdictNotReady},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyVerdict(tt.score), "score %v", tt.score)
	}
}

func TestVerdictAtMost(t *testing.T) {
	assert.Equal(t, VerdictNeedsMajorFixes, VerdictReady.AtMost(VerdictNeedsMajorFixes))
	assert.Equal(t, VerdictNotReady, VerdictNotReady.AtMost(VerdictNeedsMajorFixes))
	assert.Equal(t, VerdictNeedsMajorFixes, VerdictNeedsMajorFixes.AtMost(VerdictNeedsMajorFixes))
}

func TestVerdictContainsReady(t *testing.T) {
	assert.True(t, VerdictReady.ContainsReady())
	assert.True(t, VerdictNotReady.ContainsReady())
	assert.False(t, VerdictNeedsMinorFixes.ContainsReady())
	assert.False(t, VerdictNeedsMajorFixes.ContainsReady())
}

func TestMetricRecordAccessors_MissingKeys(t *testing.T) {
	var r MetricRecord
	assert.Zero(t, r.Value(KeyQualityScore))
	assert.False(t, r.Flag(FlagProductionReady))
	assert.Empty(t, r.Label(LabelFunctionalityHealth))
}

func TestCountIssues(t *testing.T) {
	issues := []Issue{
		{Description: "a", Severity: SeverityCritical},
		{Description: "b", Severity: SeverityHigh},
		{Description: "c", Severity: SeverityCritical},
	}
	assert.Equal(t, 2, CountIssues(issues, SeverityCritical))
	assert.Equal(t, 1, CountIssues(issues, SeverityHigh))
	assert.Equal(t, 0, CountIssues(issues, SeverityLow))
}

func TestValidate(t *testing.T) {
	good := MetricRecord{
		ProducerID:      Audit,
		Timestamp:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Summary:         map[string]float64{KeyQualityScore: 90},
		Issues:          []Issue{{Description: "x", Severity: SeverityLow}},
		ProducerVerdict: VerdictReady,
	}
	require.NoError(t, good.Validate())

	bad := good
	bad.ProducerID = "lint"
	assert.Error(t, bad.Validate())

	bad = good
	bad.Timestamp = time.Time{}
	assert.Error(t, bad.Validate())

	bad = good
	bad.ProducerVerdict = "MAYBE"
	assert.Error(t, bad.Validate())

	bad = good
	bad.Issues = []Issue{{Description: "x", Severity: "urgent"}}
	assert.Error(t, bad.Validate())
}
