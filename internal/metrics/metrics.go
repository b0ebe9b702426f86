package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/aggregate"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
)

const namespace = "readiness"

var verdicts = []record.Verdict{
	record.VerdictReady, record.VerdictNeedsMinorFixes, record.VerdictNeedsMajorFixes, record.VerdictNotReady,
}

// #region collector
// Collector owns a private registry with the pipeline's gauges and counters.
type Collector struct {
	registry *prometheus.Registry

	producerScore   *prometheus.GaugeVec
	producerVerdict *prometheus.GaugeVec
	producerIssues  *prometheus.GaugeVec
	weightedScore   prometheus.Gauge
	meanScore       prometheus.Gauge
	ready           prometheus.Gauge
	launchReady     prometheus.Gauge
	blockers        prometheus.Gauge
	dataGaps        prometheus.Gauge
	checklist       *prometheus.GaugeVec
	phaseFailures   *prometheus.CounterVec
	runs            prometheus.Counter
}

// NewCollector creates and registers every metric.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		producerScore: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "producer_score",
			Help: "Producer readiness score, 0-100.",
		}, []string{"producer"}),
		producerVerdict: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "producer_verdict",
			Help: "1 for the producer's current verdict, 0 otherwise.",
		}, []string{"producer", "verdict"}),
		producerIssues: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "producer_issues",
			Help: "Issues in the producer's latest record by severity.",
		}, []string{"producer", "severity"}),
		weightedScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "weighted_score",
			Help: "Aggregator weighted composite score.",
		}),
		meanScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "mean_score",
			Help: "Unweighted mean of producer headline scores.",
		}),
		ready: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "ready",
			Help: "1 when the aggregator considers the release ready.",
		}),
		launchReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "launch_ready",
			Help: "1 when the majority launch vote passes.",
		}),
		blockers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "blockers",
			Help: "Number of launch blockers.",
		}),
		dataGaps: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "data_gaps",
			Help: "Number of producers without a record.",
		}),
		checklist: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "checklist",
			Help: "Launch checklist items, 1 when passed.",
		}, []string{"item"}),
		phaseFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "phase_failures_total",
			Help: "Pipeline phases that failed.",
		}, []string{"phase"}),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "runs_total",
			Help: "Assessments observed.",
		}),
	}
	c.registry.MustRegister(
		c.producerScore, c.producerVerdict, c.producerIssues,
		c.weightedScore, c.meanScore, c.ready, c.launchReady,
		c.blockers, c.dataGaps, c.checklist, c.phaseFailures, c.runs,
	)
	return c
}

// Registry exposes the registry for gathering.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
// #endregion collector

// #region observe
// ObserveRecords sets the per-producer gauges. Producers without a record are reset.
func (c *Collector) ObserveRecords(records []record.MetricRecord) {
	c.producerScore.Reset()
	c.producerVerdict.Reset()
	c.producerIssues.Reset()
	for _, r := range records {
		id := string(r.ProducerID)
		c.producerScore.WithLabelValues(id).Set(r.Value(record.KeyReadinessScore))
		for _, v := range verdicts {
			c.producerVerdict.WithLabelValues(id, string(v)).Set(boolFloat(r.ProducerVerdict == v))
		}
		for _, sev := range []record.Severity{record.SeverityLow, record.SeverityMedium, record.SeverityHigh, record.SeverityCritical} {
			c.producerIssues.WithLabelValues(id, string(sev)).Set(float64(record.CountIssues(r.Issues, sev)))
		}
	}
}

// ObserveAssessment records the composite, the launch vote and the mean score.
func (c *Collector) ObserveAssessment(a aggregate.CompositeAssessment, launchReady bool, meanScore float64) {
	c.runs.Inc()
	c.weightedScore.Set(a.WeightedScore)
	c.meanScore.Set(meanScore)
	c.ready.Set(boolFloat(a.Ready))
	c.launchReady.Set(boolFloat(launchReady))
	c.blockers.Set(float64(len(a.Blockers)))
	c.dataGaps.Set(float64(len(a.DataGaps)))
	for item, ok := range a.LaunchChecklist {
		c.checklist.WithLabelValues(item).Set(boolFloat(ok))
	}
}

// PhaseFailed counts a failed pipeline phase.
func (c *Collector) PhaseFailed(phase string) {
	c.phaseFailures.WithLabelValues(phase).Inc()
}
// #endregion observe

// #region textfile
// WriteTextfile writes every metric in the node-exporter textfile format.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
// #endregion textfile

func boolFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
