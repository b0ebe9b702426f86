package orchestrator

// #region imports
import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/aggregate"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/content"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/logging"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/metrics"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/producer"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/store"
)

// #endregion

// #region orchestrator-struct

// Orchestrator sequences the producers, then assesses the persisted records
// twice: once through the aggregator and once through the launch vote.
type Orchestrator struct {
	config     Config
	factory    producer.Factory
	store      store.RecordStore
	catalog    content.Catalog
	aggregator *aggregate.Aggregator
	db         *sql.DB            // assessment history; nil disables
	metrics    *metrics.Collector // nil disables
	now        func() time.Time
}

// #endregion

// #region constructor

// NewOrchestrator wires an orchestrator over the given catalog and store.
func NewOrchestrator(config Config, factory producer.Factory, st store.RecordStore,
	catalog content.Catalog, aggregator *aggregate.Aggregator) *Orchestrator {
	return &Orchestrator{
		config:     config,
		factory:    factory,
		store:      st,
		catalog:    catalog,
		aggregator: aggregator,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// WithAssessmentLog appends every report to the assessment_log table in db.
func (o *Orchestrator) WithAssessmentLog(db *sql.DB) *Orchestrator {
	o.db = db
	return o
}

// WithMetrics updates c after every run.
func (o *Orchestrator) WithMetrics(c *metrics.Collector) *Orchestrator {
	o.metrics = c
	return o
}

// #endregion

// #region run

// Run executes every phase and assesses the result. A failing phase is
// recorded and the pipeline continues; Run itself does not fail.
func (o *Orchestrator) Run(ctx context.Context) Report {
	rep := Report{
		RunID:     uuid.New().String(),
		StartedAt: o.now(),
		Parallel:  o.config.Parallel,
		Issues:    []record.Issue{},
	}
	log.Printf("[ORCH] run %s started (parallel=%v)", rep.RunID, o.config.Parallel)

	catalog := o.catalog
	rep.Phases = append(rep.Phases, o.producerPhase(ctx, rep.RunID, PhaseAudit, record.Audit, catalog))
	enrich := o.runPhase(PhaseEnrichment, func() (PhaseResult, error) {
		enriched, stats := content.NewEnricher(o.config.Glossary).Enrich(catalog)
		catalog = enriched
		rep.Enrichment = stats
		log.Printf("[ORCH] enrichment added %d translations, %d still missing",
			stats.TranslationsAdded, len(stats.StillMissing))
		return PhaseResult{}, nil
	})
	rep.Phases = append(rep.Phases, enrich)

	later := []struct {
		phase Phase
		id    record.ProducerID
	}{
		{PhaseVirtualUser, record.VirtualUser},
		{PhaseRobustness, record.Robustness},
		{PhaseDeployment, record.Deployment},
	}
	results := make([]PhaseResult, len(later))
	if o.config.Parallel {
		var g errgroup.Group
		for i, l := range later {
			i, l := i, l
			g.Go(func() error {
				results[i] = o.producerPhase(ctx, rep.RunID, l.phase, l.id, catalog)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, l := range later {
			results[i] = o.producerPhase(ctx, rep.RunID, l.phase, l.id, catalog)
		}
	}
	rep.Phases = append(rep.Phases, results...)

	for _, p := range rep.Phases {
		if p.Status != StatusFailed {
			continue
		}
		rep.Issues = append(rep.Issues, record.Issue{
			Description: fmt.Sprintf("phase %s failed: %s", p.Phase, p.Error),
			Severity:    record.SeverityCritical,
		})
		if o.metrics != nil {
			o.metrics.PhaseFailed(string(p.Phase))
		}
	}

	o.assess(&rep)
	rep.FinishedAt = o.now()
	return rep
}

// Assess evaluates the records currently in the store without running any
// producer.
func (o *Orchestrator) Assess() Report {
	rep := Report{RunID: uuid.New().String(), StartedAt: o.now(), Issues: []record.Issue{}}
	o.assess(&rep)
	rep.FinishedAt = o.now()
	return rep
}

func (o *Orchestrator) assess(rep *Report) {
	records, missing := store.LoadAll(o.store)
	if len(missing) > 0 {
		log.Printf("[ORCH] data gaps: %v", missing)
	}
	rep.Records = records
	rep.Assessment = o.aggregator.Aggregate(records)
	rep.Vote = Vote(records)
	rep.MeanScore, rep.MeanGrade = MeanScore(records)

	log.Printf("[ORCH] aggregator: score=%.2f grade=%s ready=%v blockers=%d",
		rep.Assessment.WeightedScore, rep.Assessment.Grade, rep.Assessment.Ready, len(rep.Assessment.Blockers))
	log.Printf("[ORCH] launch vote: %d/%d launchReady=%v mean=%.2f (%s)",
		rep.Vote.Passed, len(rep.Vote.Criteria), rep.Vote.LaunchReady, rep.MeanScore, rep.MeanGrade)

	if o.metrics != nil {
		o.metrics.ObserveRecords(records)
		o.metrics.ObserveAssessment(rep.Assessment, rep.Vote.LaunchReady, rep.MeanScore)
	}
	if o.db != nil {
		if err := o.logAssessment(*rep); err != nil {
			log.Printf("[ORCH] failed to log assessment: %v", err)
		}
	}
}

func (o *Orchestrator) logAssessment(rep Report) error {
	summary, err := json.Marshal(NewSummary(rep))
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	gaps := make([]string, len(rep.Assessment.DataGaps))
	for i, id := range rep.Assessment.DataGaps {
		gaps[i] = string(id)
	}
	return logging.LogAssessment(o.db, logging.AssessmentEntry{
		RunID:         rep.RunID,
		WeightedScore: rep.Assessment.WeightedScore,
		Grade:         rep.Assessment.Grade,
		Ready:         rep.Assessment.Ready,
		LaunchReady:   rep.Vote.LaunchReady,
		MeanScore:     rep.MeanScore,
		MeanGrade:     rep.MeanGrade,
		Blockers:      rep.Assessment.BlockerReasons(),
		DataGaps:      gaps,
		SummaryJSON:   string(summary),
		CreatedAt:     rep.FinishedAt,
	})
}

// #endregion

// #region phases

// ProduceOne runs a single producer against the configured catalog and
// persists its record.
func (o *Orchestrator) ProduceOne(ctx context.Context, id record.ProducerID) (record.MetricRecord, error) {
	return o.produce(ctx, uuid.New().String(), id, o.catalog)
}

func (o *Orchestrator) producerPhase(ctx context.Context, runID string, phase Phase, id record.ProducerID, cat content.Catalog) PhaseResult {
	return o.runPhase(phase, func() (PhaseResult, error) {
		rec, err := o.produce(ctx, runID, id, cat)
		if err != nil {
			return PhaseResult{}, err
		}
		return PhaseResult{Verdict: rec.ProducerVerdict, Score: rec.Value(record.KeyReadinessScore)}, nil
	})
}

func (o *Orchestrator) produce(ctx context.Context, runID string, id record.ProducerID, cat content.Catalog) (record.MetricRecord, error) {
	p, err := o.factory(id, cat)
	if err != nil {
		return record.MetricRecord{}, fmt.Errorf("build %s: %w", id, err)
	}
	if c, ok := p.(io.Closer); ok {
		defer func() {
			if err := c.Close(); err != nil {
				log.Printf("[ORCH] close %s: %v", id, err)
			}
		}()
	}
	rec, err := p.Run(ctx)
	if err != nil {
		return record.MetricRecord{}, fmt.Errorf("run %s: %w", id, err)
	}
	// A cancelled battery reports every check as an execution error; keep
	// the last stored record instead of overwriting it.
	if err := ctx.Err(); err != nil {
		return record.MetricRecord{}, fmt.Errorf("run %s: %w", id, err)
	}
	rec.RunID = runID
	if err := o.store.Put(rec); err != nil {
		return record.MetricRecord{}, fmt.Errorf("persist %s: %w", id, err)
	}
	log.Printf("[ORCH] %s: verdict=%s score=%.2f issues=%d",
		id, rec.ProducerVerdict, rec.Value(record.KeyReadinessScore), len(rec.Issues))
	return rec, nil
}

// runPhase times fn and converts an error or panic into a FAILED result.
func (o *Orchestrator) runPhase(phase Phase, fn func() (PhaseResult, error)) (res PhaseResult) {
	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			res = PhaseResult{Status: StatusFailed, Error: fmt.Sprintf("panic: %v", p)}
		}
		res.Phase = phase
		res.DurationMs = time.Since(start).Milliseconds()
		if res.Status == StatusFailed {
			log.Printf("[ORCH] phase %s FAILED: %s", phase, res.Error)
		}
	}()

	res, err := fn()
	if err != nil {
		return PhaseResult{Status: StatusFailed, Error: err.Error()}
	}
	res.Status = StatusCompleted
	return res
}

// #endregion
