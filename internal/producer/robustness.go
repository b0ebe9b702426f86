package producer

import (
	"context"
	"fmt"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/check"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
)

const performanceCategory = "performance"

// #region robustness-producer

// RobustnessProducer runs the functional and performance robustness suite.
type RobustnessProducer struct {
	base
	cfg  RobustnessConfig
	seed int64
}

// NewRobustness creates the robustness suite.
func NewRobustness(cfg RobustnessConfig, seed int64, workers int) *RobustnessProducer {
	return &RobustnessProducer{base: newBase(workers), cfg: cfg, seed: seed}
}

// ID returns record.Robustness.
func (p *RobustnessProducer) ID() record.ProducerID { return record.Robustness }

// Battery builds the functional checks per category plus the performance checks.
func (p *RobustnessProducer) Battery() []check.Check {
	var checks []check.Check
	sevs := []record.Severity{record.SeverityLow, record.SeverityMedium, record.SeverityHigh, record.SeverityCritical}
	for _, cat := range p.cfg.Categories {
		for i := 1; i <= p.cfg.ChecksPerCategory; i++ {
			name := fmt.Sprintf("robustness/%s/%02d", cat, i)
			checks = append(checks, check.Check{
				Name:     name,
				Category: cat,
				Evaluator: check.Simulated{
					Seed: p.seed, Name: name,
					PassRate: p.cfg.PassRate, ErrRate: p.cfg.ErrorRate,
					Latency:        p.cfg.FunctionalLatencyMs,
					FailSeverities: sevs,
				},
			})
		}
	}
	for i := 1; i <= p.cfg.PerformanceChecks; i++ {
		name := fmt.Sprintf("robustness/%s/%02d", performanceCategory, i)
		checks = append(checks, check.Check{
			Name:     name,
			Category: performanceCategory,
			Tags:     []string{performanceCategory},
			Evaluator: check.Simulated{
				Seed: p.seed, Name: name,
				PassRate: p.cfg.PassRate, ErrRate: p.cfg.ErrorRate,
				Value:          p.cfg.PerformanceScore,
				Latency:        p.cfg.PerformanceLatencyMs,
				FailSeverities: []record.Severity{record.SeverityLow, record.SeverityMedium},
			},
		})
	}
	return checks
}

// Run executes the suite and classifies the result.
func (p *RobustnessProducer) Run(ctx context.Context) (record.MetricRecord, error) {
	checks := p.Battery()
	results := p.run(ctx, "ROBUST", checks)
	issues := check.Issues(results)

	executed := 0
	for _, r := range results {
		if r.Executed() {
			executed++
		}
	}
	coverage := 0.0
	if len(checks) > 0 {
		coverage = 100 * float64(executed) / float64(len(checks))
	}

	healthy := healthyCategories(check.CategoryRates(results), p.cfg.Categories, categoryHealthyRate)
	label := FunctionalityHealth(healthy, len(p.cfg.Categories))

	perf := check.Filter(results, func(c check.Check) bool { return c.Category == performanceCategory })
	pass := check.Overall(results).Score()
	rec := p.record(record.Robustness, map[string]float64{
		record.KeyPassRate:                pass,
		record.KeySuccessRate:             pass,
		record.KeyCoveragePercent:         coverage,
		record.KeyCriticalBugCount:        float64(record.CountIssues(issues, record.SeverityCritical)),
		record.KeyHighSeverityBugCount:    float64(record.CountIssues(issues, record.SeverityHigh)),
		record.KeyAveragePerformanceScore: check.MeanValue(perf),
	}, issues)
	rec.Labels = map[string]string{record.LabelFunctionalityHealth: label}
	rec.Flags = map[string]bool{
		record.FlagFunctionalityHealthy: label == record.HealthExcellent || label == record.HealthGood,
	}
	rec.Summary[record.KeyReadinessScore] = CriteriaScore(RobustnessCriteria(rec))
	rec.ProducerVerdict = RobustnessVerdict(rec)
	return rec, nil
}

// healthyCategories counts the categories whose pass rate reaches min.
// A category with no results is unhealthy.
func healthyCategories(rates map[string]check.Rate, categories []string, min float64) int {
	n := 0
	for _, c := range categories {
		r, ok := rates[c]
		if ok && r.Total > 0 && r.Score() >= min {
			n++
		}
	}
	return n
}

// #endregion robustness-producer
