package producer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/check"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
)

const securityTag = "security"

// #region deployment-producer

// DeploymentProducer validates a build for production: functional groups,
// security checks, performance budgets and optional live health probes.
type DeploymentProducer struct {
	base
	cfg   DeploymentConfig
	seed  int64
	extra []check.Check
}

// NewDeployment creates the validator. extra checks run alongside the
// simulated battery and count toward their own category.
func NewDeployment(cfg DeploymentConfig, seed int64, workers int, extra ...check.Check) *DeploymentProducer {
	return &DeploymentProducer{base: newBase(workers), cfg: cfg, seed: seed, extra: extra}
}

// ID returns record.Deployment.
func (p *DeploymentProducer) ID() record.ProducerID { return record.Deployment }

// Battery builds group, security and performance checks, then appends extra checks.
func (p *DeploymentProducer) Battery() []check.Check {
	var checks []check.Check
	add := func(category, name string, tags []string, sevs []record.Severity) {
		checks = append(checks, check.Check{
			Name:     name,
			Category: category,
			Tags:     tags,
			Evaluator: check.Simulated{
				Seed: p.seed, Name: name,
				PassRate: p.cfg.PassRate, ErrRate: p.cfg.ErrorRate,
				Latency:        p.cfg.LatencyMs,
				FailSeverities: sevs,
			},
		})
	}
	for _, g := range p.cfg.Groups {
		for i := 1; i <= p.cfg.ChecksPerGroup; i++ {
			add(g, fmt.Sprintf("deploy/%s/%02d", g, i), nil,
				[]record.Severity{record.SeverityLow, record.SeverityMedium, record.SeverityHigh, record.SeverityCritical})
		}
	}
	for i := 1; i <= p.cfg.SecurityChecks; i++ {
		add(securityTag, fmt.Sprintf("deploy/%s/%02d", securityTag, i), []string{securityTag},
			[]record.Severity{record.SeverityHigh, record.SeverityCritical})
	}
	for i := 1; i <= p.cfg.PerformanceChecks; i++ {
		add(performanceCategory, fmt.Sprintf("deploy/%s/%02d", performanceCategory, i), []string{performanceCategory},
			[]record.Severity{record.SeverityLow, record.SeverityMedium})
	}
	return append(checks, p.extra...)
}

// Run validates the deployment and classifies the result.
func (p *DeploymentProducer) Run(ctx context.Context) (record.MetricRecord, error) {
	results := p.run(ctx, "DEPLOY", p.Battery())
	issues := check.Issues(results)

	rates := check.CategoryRates(results)
	healthy := healthyCategories(rates, p.cfg.Groups, groupHealthyRate)
	functional := len(p.cfg.Groups) > 0 && float64(healthy)/float64(len(p.cfg.Groups)) >= healthyGroupShare

	security := check.Filter(results, func(c check.Check) bool { return c.HasTag(securityTag) })
	ran := false
	unresolved := 0
	for _, r := range security {
		if r.Executed() {
			ran = true
		}
		if !r.Outcome.Passed {
			unresolved++
		}
	}

	limit := p.cfg.RegressionThresholdMs
	if limit <= 0 {
		limit = defaultRegressionLimit
	}
	regressions := 0
	for _, c := range check.Categories(rates) {
		if check.MeanDuration(check.Filter(results, func(ch check.Check) bool { return ch.Category == c })) > limit {
			regressions++
		}
	}

	rec := p.record(record.Deployment, map[string]float64{
		record.KeySuccessRate:            check.Overall(results).Score(),
		record.KeyCriticalBugCount:       float64(record.CountIssues(issues, record.SeverityCritical)),
		record.KeyHighSeverityBugCount:   float64(record.CountIssues(issues, record.SeverityHigh)),
		record.KeyPerformanceRegressions: float64(regressions),
		record.KeyUnresolvedSecurityBugs: float64(unresolved),
	}, issues)
	rec.Flags = map[string]bool{
		record.FlagFunctionalityHealthy: functional,
		record.FlagSecurityChecksRan:    ran,
	}
	rec.Summary[record.KeyReadinessScore] = CriteriaScore(DeploymentCriteria(rec))
	rec.ProducerVerdict = DeploymentVerdict(rec)
	rec.Flags[record.FlagProductionReady] = rec.ProducerVerdict == record.VerdictReady
	return rec, nil
}

// Close releases evaluators that hold connections, such as health probes.
func (p *DeploymentProducer) Close() error {
	var errs []error
	for _, c := range p.extra {
		if cl, ok := c.Evaluator.(io.Closer); ok {
			if err := cl.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close %s: %w", c.Name, err))
			}
		}
	}
	return errors.Join(errs...)
}

// #endregion deployment-producer
