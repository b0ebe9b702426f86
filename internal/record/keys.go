package record

// Summary keys. Values are on a 0-100 scale unless named as a count.
const (
	KeyReadinessScore = "readinessScore"

	// audit
	KeyQualityScore      = "qualityScore"
	KeyHindiCompleteness = "hindiCompleteness"
	KeyContentGapCount   = "contentGapCount"

	// virtualUser
	KeySuccessRate         = "successRate"
	KeyLessonCoverage      = "lessonCoverage"
	KeyErrorRate           = "errorRate"
	KeyAverageSatisfaction = "averageSatisfaction"
	KeyPerformanceScore    = "performanceScore"
	KeySatisfactionPrefix  = "satisfaction."

	// robustness
	KeyPassRate                = "passRate"
	KeyCoveragePercent         = "coveragePercent"
	KeyCriticalBugCount        = "criticalBugCount"
	KeyHighSeverityBugCount    = "highSeverityBugCount"
	KeyAveragePerformanceScore = "averagePerformanceScore"

	// deployment
	KeyPerformanceRegressions = "performanceRegressions"
	KeyUnresolvedSecurityBugs = "unresolvedSecurityBugs"
)

// Flag keys.
const (
	FlagSatisfactionCriterion = "satisfactionCriterion"
	FlagFunctionalityHealthy  = "functionalityHealthy"
	FlagSecurityChecksRan     = "securityChecksRan"
	FlagProductionReady       = "productionReady"
)

// Label keys.
const (
	LabelFunctionalityHealth = "functionalityHealth"
)

// Functionality health levels reported by the robustness producer.
const (
	HealthExcellent = "EXCELLENT"
	HealthGood      = "GOOD"
	HealthFair      = "FAIR"
	HealthPoor      = "POOR"
)
