package producer

import (
	"fmt"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
)

// Launch thresholds shared by the producer criteria.
const (
	robustnessMinSuccess     = 95.0
	robustnessMinCoverage    = 90.0
	robustnessMaxHighBugs    = 3
	robustnessMinPerformance = 80.0
	categoryHealthyRate      = 90.0
	healthyCategoryShare     = 0.8

	deploymentMinSuccess   = 98.0
	groupHealthyRate       = 95.0
	healthyGroupShare      = 0.9
	defaultRegressionLimit = 3000.0
)

// #region audit

// AuditReadiness is the equal-weight mean of quality and Hindi completeness.
func AuditReadiness(rec record.MetricRecord) float64 {
	return (rec.Value(record.KeyQualityScore) + rec.Value(record.KeyHindiCompleteness)) / 2
}

// AuditVerdict classifies an audit record. More than maxGaps content gaps
// caps the verdict at NEEDS_MAJOR_FIXES whatever the score.
func AuditVerdict(rec record.MetricRecord, maxGaps int) record.Verdict {
	v := record.ClassifyVerdict(AuditReadiness(rec))
	if rec.Value(record.KeyContentGapCount) > float64(maxGaps) {
		v = v.AtMost(record.VerdictNeedsMajorFixes)
	}
	return v
}

// #endregion audit

// #region virtual-user

// VirtualUserReadiness weighs success 0.3, coverage 0.3, error-free 0.2 and satisfaction 0.2.
func VirtualUserReadiness(rec record.MetricRecord) float64 {
	return rec.Value(record.KeySuccessRate)*0.3 +
		rec.Value(record.KeyLessonCoverage)*0.3 +
		(100-rec.Value(record.KeyErrorRate))*0.2 +
		rec.Value(record.KeyAverageSatisfaction)*0.2
}

// SatisfactionCriterion requires every cohort, independently, to reach min.
// A high average does not compensate for one unhappy cohort.
func SatisfactionCriterion(cohorts map[string]float64, min float64) bool {
	return len(UnsatisfiedCohorts(cohorts, min)) == 0
}

// UnsatisfiedCohorts lists, in cohort order, the cohorts below min or absent.
func UnsatisfiedCohorts(cohorts map[string]float64, min float64) []string {
	var out []string
	for _, c := range Cohorts {
		if s, ok := cohorts[c]; !ok || s < min {
			out = append(out, c)
		}
	}
	return out
}

// VirtualUserVerdict classifies a virtual-user record.
func VirtualUserVerdict(rec record.MetricRecord) record.Verdict {
	return record.ClassifyVerdict(VirtualUserReadiness(rec))
}

// #endregion virtual-user

// #region robustness

// RobustnessCriteria evaluates the five robustness launch criteria.
func RobustnessCriteria(rec record.MetricRecord) []Criterion {
	return []Criterion{
		{Name: "success_rate", Passed: rec.Value(record.KeySuccessRate) >= robustnessMinSuccess},
		{Name: "coverage", Passed: rec.Value(record.KeyCoveragePercent) >= robustnessMinCoverage},
		{Name: "high_severity_bugs", Passed: rec.Value(record.KeyHighSeverityBugCount) <= robustnessMaxHighBugs},
		{Name: "performance", Passed: rec.Value(record.KeyAveragePerformanceScore) >= robustnessMinPerformance},
		{Name: "functionality", Passed: rec.Flag(record.FlagFunctionalityHealthy)},
	}
}

// RobustnessVerdict classifies a robustness record.
func RobustnessVerdict(rec record.MetricRecord) record.Verdict {
	return record.ClassifyVerdict(CriteriaScore(RobustnessCriteria(rec)))
}

// FunctionalityHealth buckets the share of healthy functional categories.
func FunctionalityHealth(healthy, total int) string {
	if total == 0 {
		return record.HealthPoor
	}
	share := float64(healthy) / float64(total)
	switch {
	case share >= 1:
		return record.HealthExcellent
	case share >= healthyCategoryShare:
		return record.HealthGood
	case share >= 0.5:
		return record.HealthFair
	default:
		return record.HealthPoor
	}
}

// #endregion robustness

// #region deployment

// DeploymentCriteria evaluates the five deployment launch criteria.
func DeploymentCriteria(rec record.MetricRecord) []Criterion {
	return []Criterion{
		{Name: "success_rate", Passed: rec.Value(record.KeySuccessRate) >= deploymentMinSuccess},
		{Name: "critical_bugs", Passed: rec.Value(record.KeyCriticalBugCount) == 0},
		{Name: "performance_regressions", Passed: rec.Value(record.KeyPerformanceRegressions) == 0},
		{Name: "security", Passed: rec.Value(record.KeyUnresolvedSecurityBugs) == 0},
		{Name: "functionality", Passed: rec.Flag(record.FlagFunctionalityHealthy)},
	}
}

// DeploymentVerdict classifies a deployment record.
func DeploymentVerdict(rec record.MetricRecord) record.Verdict {
	return record.ClassifyVerdict(CriteriaScore(DeploymentCriteria(rec)))
}

// #endregion deployment

// #region dispatch

// Verdict recomputes the verdict of any record from its own contents.
func Verdict(rec record.MetricRecord, cfg Config) (record.Verdict, error) {
	switch rec.ProducerID {
	case record.Audit:
		return AuditVerdict(rec, cfg.Audit.MaxContentGaps), nil
	case record.VirtualUser:
		return VirtualUserVerdict(rec), nil
	case record.Robustness:
		return RobustnessVerdict(rec), nil
	case record.Deployment:
		return DeploymentVerdict(rec), nil
	default:
		return "", fmt.Errorf("unknown producer %q", rec.ProducerID)
	}
}

// #endregion dispatch
