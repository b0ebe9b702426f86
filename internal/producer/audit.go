package producer

import (
	"context"
	"fmt"
	"strings"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/check"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/content"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
)

// Audit check categories.
const (
	auditStructure     = "structure"
	auditTranslation   = "translation"
	auditPronunciation = "pronunciation"
	auditMetadata      = "metadata"
)

var levels = map[string]bool{"beginner": true, "intermediate": true, "advanced": true}

// #region audit-producer

// AuditProducer audits lesson content for completeness and quality.
type AuditProducer struct {
	base
	catalog content.Catalog
	cfg     AuditConfig
}

// NewAudit creates an audit over cat.
func NewAudit(cat content.Catalog, cfg AuditConfig, workers int) *AuditProducer {
	return &AuditProducer{base: newBase(workers), catalog: cat, cfg: cfg}
}

// ID returns record.Audit.
func (p *AuditProducer) ID() record.ProducerID { return record.Audit }

// Battery builds four checks per lesson.
func (p *AuditProducer) Battery() []check.Check {
	var checks []check.Check
	for _, l := range p.catalog.Lessons {
		l := l
		checks = append(checks,
			check.Check{
				Name:     fmt.Sprintf("%s/%s", l.ID, auditStructure),
				Category: auditStructure,
				Evaluator: check.EvaluatorFunc(func(context.Context) (check.Outcome, error) {
					if len(l.Entries) < p.cfg.MinEntries {
						return check.Outcome{Severity: record.SeverityMedium,
							Detail: fmt.Sprintf("%d entries, want at least %d", len(l.Entries), p.cfg.MinEntries)}, nil
					}
					return check.Outcome{Passed: true}, nil
				}),
			},
			check.Check{
				Name:     fmt.Sprintf("%s/%s", l.ID, auditTranslation),
				Category: auditTranslation,
				Evaluator: check.EvaluatorFunc(func(context.Context) (check.Outcome, error) {
					var missing []string
					for _, e := range l.Entries {
						if !e.HasHindi() {
							missing = append(missing, e.English)
						}
					}
					if len(missing) > 0 {
						return check.Outcome{Severity: record.SeverityHigh,
							Detail: "no Hindi for " + strings.Join(missing, ", ")}, nil
					}
					return check.Outcome{Passed: true}, nil
				}),
			},
			check.Check{
				Name:     fmt.Sprintf("%s/%s", l.ID, auditPronunciation),
				Category: auditPronunciation,
				Evaluator: check.EvaluatorFunc(func(context.Context) (check.Outcome, error) {
					for _, e := range l.Entries {
						if strings.TrimSpace(e.Transliteration) == "" {
							return check.Outcome{Severity: record.SeverityLow,
								Detail: "no transliteration for " + e.English}, nil
						}
					}
					return check.Outcome{Passed: true}, nil
				}),
			},
			check.Check{
				Name:     fmt.Sprintf("%s/%s", l.ID, auditMetadata),
				Category: auditMetadata,
				Evaluator: check.EvaluatorFunc(func(context.Context) (check.Outcome, error) {
					if strings.TrimSpace(l.Title) == "" || !levels[l.Level] {
						return check.Outcome{Severity: record.SeverityLow,
							Detail: fmt.Sprintf("title %q level %q", l.Title, l.Level)}, nil
					}
					return check.Outcome{Passed: true}, nil
				}),
			},
		)
	}
	return checks
}

// Run audits the catalog and classifies the result.
func (p *AuditProducer) Run(ctx context.Context) (record.MetricRecord, error) {
	results := p.run(ctx, "AUDIT", p.Battery())
	issues := check.Issues(results)

	gaps := content.Gaps(p.catalog, p.cfg.MinEntries)
	if len(p.catalog.Lessons) == 0 {
		issues = append(issues, record.Issue{Description: "catalog has no lessons", Severity: record.SeverityCritical})
	}
	if len(gaps) > p.cfg.MaxContentGaps {
		issues = append(issues, record.Issue{
			Description: fmt.Sprintf("%d content gaps exceed the limit of %d", len(gaps), p.cfg.MaxContentGaps),
			Severity:    record.SeverityCritical,
		})
	}

	rec := p.record(record.Audit, map[string]float64{
		record.KeyQualityScore:      check.Overall(results).Score(),
		record.KeyHindiCompleteness: content.HindiCompleteness(p.catalog),
		record.KeyContentGapCount:   float64(len(gaps)),
	}, issues)
	rec.ContentGaps = gaps
	rec.Summary[record.KeyReadinessScore] = AuditReadiness(rec)
	rec.ProducerVerdict = AuditVerdict(rec, p.cfg.MaxContentGaps)
	return rec, nil
}

// #endregion audit-producer
