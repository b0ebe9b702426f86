package producer

import (
	"context"
	"fmt"
	"strings"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/check"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/content"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
)

// Cohorts are the three learner cohorts the simulation always covers.
var Cohorts = []string{"beginner", "intermediate", "advanced"}

// #region virtual-user-producer

// VirtualUserProducer simulates learner sessions across cohorts and lessons.
type VirtualUserProducer struct {
	base
	lessons []string
	cfg     VirtualUserConfig
	seed    int64
}

// NewVirtualUser creates a simulation over the lessons of cat.
func NewVirtualUser(cat content.Catalog, cfg VirtualUserConfig, seed int64, workers int) *VirtualUserProducer {
	return &VirtualUserProducer{base: newBase(workers), lessons: cat.LessonIDs(), cfg: cfg, seed: seed}
}

// ID returns record.VirtualUser.
func (p *VirtualUserProducer) ID() record.ProducerID { return record.VirtualUser }

// Battery builds one session check per cohort, user and lesson.
func (p *VirtualUserProducer) Battery() []check.Check {
	var checks []check.Check
	for _, cohort := range Cohorts {
		for u := 1; u <= p.cfg.UsersPerCohort; u++ {
			for _, lesson := range p.lessons {
				name := fmt.Sprintf("session/%s/user-%d/%s", cohort, u, lesson)
				checks = append(checks, check.Check{
					Name:     name,
					Category: cohort,
					Tags:     []string{"lesson:" + lesson},
					Evaluator: check.Simulated{
						Seed:           p.seed,
						Name:           name,
						PassRate:       p.cfg.PassRate,
						ErrRate:        p.cfg.ErrorRate,
						Value:          p.satisfaction(cohort),
						Latency:        p.cfg.LatencyMs,
						FailSeverities: []record.Severity{record.SeverityLow, record.SeverityMedium, record.SeverityHigh},
					},
				})
			}
		}
	}
	return checks
}

// Run simulates every session and classifies the result.
func (p *VirtualUserProducer) Run(ctx context.Context) (record.MetricRecord, error) {
	results := p.run(ctx, "VUSER", p.Battery())
	issues := check.Issues(results)
	if len(p.lessons) == 0 {
		issues = append(issues, record.Issue{Description: "no lessons available to simulate", Severity: record.SeverityHigh})
	}

	summary := map[string]float64{
		record.KeySuccessRate:      check.Overall(results).Score(),
		record.KeyLessonCoverage:   p.lessonCoverage(results),
		record.KeyErrorRate:        errorRate(results),
		record.KeyPerformanceScore: p.performanceScore(results),
	}

	cohorts := make(map[string]float64, len(Cohorts))
	var satSum float64
	for _, cohort := range Cohorts {
		sat := check.MeanValue(check.Filter(results, func(c check.Check) bool { return c.Category == cohort }))
		cohorts[cohort] = sat
		satSum += sat
		summary[record.KeySatisfactionPrefix+cohort] = sat
	}
	summary[record.KeyAverageSatisfaction] = satSum / float64(len(Cohorts))

	for _, cohort := range UnsatisfiedCohorts(cohorts, p.cfg.MinCohortSatisfaction) {
		issues = append(issues, record.Issue{
			Description: fmt.Sprintf("%s cohort satisfaction %.1f is below %.0f", cohort, cohorts[cohort], p.cfg.MinCohortSatisfaction),
			Severity:    record.SeverityHigh,
			Check:       "satisfaction/" + cohort,
		})
	}

	rec := p.record(record.VirtualUser, summary, issues)
	rec.Flags = map[string]bool{
		record.FlagSatisfactionCriterion: SatisfactionCriterion(cohorts, p.cfg.MinCohortSatisfaction),
	}
	rec.Summary[record.KeyReadinessScore] = VirtualUserReadiness(rec)
	rec.ProducerVerdict = VirtualUserVerdict(rec)
	return rec, nil
}

// satisfaction is the satisfaction range drawn for cohort.
func (p *VirtualUserProducer) satisfaction(cohort string) [2]float64 {
	if span, ok := p.cfg.CohortSatisfaction[cohort]; ok {
		return span
	}
	return p.cfg.Satisfaction
}

// lessonCoverage is the share of lessons completed by at least one session.
func (p *VirtualUserProducer) lessonCoverage(results []check.Result) float64 {
	if len(p.lessons) == 0 {
		return 0
	}
	covered := make(map[string]bool)
	for _, r := range results {
		if !r.Executed() || !r.Outcome.Passed {
			continue
		}
		for _, tag := range r.Check.Tags {
			if lesson, ok := strings.CutPrefix(tag, "lesson:"); ok {
				covered[lesson] = true
			}
		}
	}
	return 100 * float64(len(covered)) / float64(len(p.lessons))
}

// performanceScore is the share of executed sessions within the latency budget.
func (p *VirtualUserProducer) performanceScore(results []check.Result) float64 {
	var rate check.Rate
	for _, r := range results {
		if !r.Executed() {
			continue
		}
		rate.Total++
		if r.Outcome.DurationMs <= p.cfg.LatencyBudgetMs {
			rate.Passed++
		}
	}
	return rate.Score()
}

// errorRate is the share of sessions that could not run at all.
func errorRate(results []check.Result) float64 {
	var rate check.Rate
	for _, r := range results {
		rate.Total++
		if !r.Executed() {
			rate.Passed++
		}
	}
	return rate.Score()
}

// #endregion virtual-user-producer
