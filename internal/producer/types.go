package producer

import (
	"context"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/probe"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
)

// #region producer-interface

// Producer runs a battery of checks and emits one MetricRecord. Run returns
// an error only when the producer cannot produce a record at all; failing
// checks are reported inside the record.
type Producer interface {
	ID() record.ProducerID
	Run(ctx context.Context) (record.MetricRecord, error)
}

// #endregion producer-interface

// #region criterion

// Criterion is one named boolean readiness criterion.
type Criterion struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
}

// CriteriaScore converts criteria to 0/100 and averages them.
func CriteriaScore(criteria []Criterion) float64 {
	if len(criteria) == 0 {
		return 0
	}
	passed := 0
	for _, c := range criteria {
		if c.Passed {
			passed++
		}
	}
	return 100 * float64(passed) / float64(len(criteria))
}

// #endregion criterion

// #region config

// Config holds tuning knobs for all four producers.
type Config struct {
	Seed        int64             `yaml:"seed"`
	Workers     int               `yaml:"workers"`
	Audit       AuditConfig       `yaml:"audit"`
	VirtualUser VirtualUserConfig `yaml:"virtual_user"`
	Robustness  RobustnessConfig  `yaml:"robustness"`
	Deployment  DeploymentConfig  `yaml:"deployment"`
}

// AuditConfig tunes the content audit.
type AuditConfig struct {
	MinEntries     int `yaml:"min_entries"`      // lessons with fewer entries are content gaps
	MaxContentGaps int `yaml:"max_content_gaps"` // more gaps than this is a blocker
}

// VirtualUserConfig tunes the simulated learner sessions.
type VirtualUserConfig struct {
	UsersPerCohort        int                   `yaml:"users_per_cohort"`
	PassRate              float64               `yaml:"pass_rate"`
	ErrorRate             float64               `yaml:"error_rate"`
	Satisfaction          [2]float64            `yaml:"satisfaction"`
	CohortSatisfaction    map[string][2]float64 `yaml:"cohort_satisfaction"` // per-cohort override of Satisfaction
	LatencyMs             [2]float64            `yaml:"latency_ms"`
	LatencyBudgetMs       float64               `yaml:"latency_budget_ms"`
	MinCohortSatisfaction float64               `yaml:"min_cohort_satisfaction"`
}

// RobustnessConfig tunes the robustness suite.
type RobustnessConfig struct {
	Categories           []string   `yaml:"categories"` // functional categories
	ChecksPerCategory    int        `yaml:"checks_per_category"`
	PerformanceChecks    int        `yaml:"performance_checks"`
	PassRate             float64    `yaml:"pass_rate"`
	ErrorRate            float64    `yaml:"error_rate"`
	PerformanceScore     [2]float64 `yaml:"performance_score"`
	FunctionalLatencyMs  [2]float64 `yaml:"functional_latency_ms"`
	PerformanceLatencyMs [2]float64 `yaml:"performance_latency_ms"`
}

// DeploymentConfig tunes the deployment validator.
type DeploymentConfig struct {
	Groups                []string       `yaml:"groups"` // functional test groups
	ChecksPerGroup        int            `yaml:"checks_per_group"`
	SecurityChecks        int            `yaml:"security_checks"`
	PerformanceChecks     int            `yaml:"performance_checks"`
	PassRate              float64        `yaml:"pass_rate"`
	ErrorRate             float64        `yaml:"error_rate"`
	LatencyMs             [2]float64     `yaml:"latency_ms"`
	RegressionThresholdMs float64        `yaml:"regression_threshold_ms"`
	HealthTargets         []probe.Target `yaml:"health_targets"`
}

// DefaultConfig returns the defaults used by the CLI.
func DefaultConfig() Config {
	return Config{
		Seed:    42,
		Workers: 8,
		Audit: AuditConfig{
			MinEntries:     4,
			MaxContentGaps: 3,
		},
		VirtualUser: VirtualUserConfig{
			UsersPerCohort:        5,
			PassRate:              0.97,
			ErrorRate:             0.01,
			Satisfaction:          [2]float64{68, 98},
			LatencyMs:             [2]float64{300, 2600},
			LatencyBudgetMs:       2500,
			MinCohortSatisfaction: 70,
		},
		Robustness: RobustnessConfig{
			Categories:           []string{"navigation", "lessons", "pronunciation", "quizzes", "progress", "gamification"},
			ChecksPerCategory:    10,
			PerformanceChecks:    8,
			PassRate:             0.97,
			PerformanceScore:     [2]float64{72, 100},
			FunctionalLatencyMs:  [2]float64{20, 400},
			PerformanceLatencyMs: [2]float64{200, 1800},
		},
		Deployment: DeploymentConfig{
			Groups:                []string{"pages", "api", "assets"},
			ChecksPerGroup:        8,
			SecurityChecks:        6,
			PerformanceChecks:     6,
			PassRate:              0.99,
			LatencyMs:             [2]float64{150, 2400},
			RegressionThresholdMs: 3000,
		},
	}
}

// #endregion config
