package producer

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/check"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/content"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/probe"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
)

// #region base

// base carries what every producer shares: clock, workers and log tag.
type base struct {
	workers int
	now     func() time.Time
}

func newBase(workers int) base {
	return base{
		workers: workers,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// run evaluates the battery and logs a one-line summary.
func (b base) run(ctx context.Context, tag string, checks []check.Check) []check.Result {
	results := check.RunBattery(ctx, checks, b.workers)
	overall := check.Overall(results)
	log.Printf("[%s] %d/%d checks passed", tag, overall.Passed, overall.Total)
	return results
}

func (b base) record(id record.ProducerID, summary map[string]float64, issues []record.Issue) record.MetricRecord {
	if issues == nil {
		issues = []record.Issue{}
	}
	return record.MetricRecord{
		ProducerID: id,
		Timestamp:  b.now(),
		Summary:    summary,
		Issues:     issues,
	}
}

// #endregion base

// #region factory

// Factory builds the producer for id over the current catalog.
type Factory func(id record.ProducerID, cat content.Catalog) (Producer, error)

// NewFactory returns a Factory wired from cfg. Deployment health targets are
// dialed lazily; their connections live as long as the returned producer.
func NewFactory(cfg Config) Factory {
	return func(id record.ProducerID, cat content.Catalog) (Producer, error) {
		switch id {
		case record.Audit:
			return NewAudit(cat, cfg.Audit, cfg.Workers), nil
		case record.VirtualUser:
			return NewVirtualUser(cat, cfg.VirtualUser, cfg.Seed, cfg.Workers), nil
		case record.Robustness:
			return NewRobustness(cfg.Robustness, cfg.Seed, cfg.Workers), nil
		case record.Deployment:
			var extra []check.Check
			for _, t := range cfg.Deployment.HealthTargets {
				ev, err := probe.NewHealthEvaluator(t)
				if err != nil {
					return nil, fmt.Errorf("health target %s: %w", t.Name, err)
				}
				extra = append(extra, check.Check{
					Name:      "api/health/" + t.Name,
					Category:  "api",
					Tags:      []string{"health"},
					Evaluator: ev,
				})
			}
			return NewDeployment(cfg.Deployment, cfg.Seed, cfg.Workers, extra...), nil
		default:
			return nil, fmt.Errorf("unknown producer %q", id)
		}
	}
}

// #endregion factory
