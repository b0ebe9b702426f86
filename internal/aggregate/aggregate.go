package aggregate

import (
	"fmt"
	"time"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
)

// #region grade
// Grade maps a 0-100 score onto the letter ladder. Bounds are inclusive.
func Grade(score float64) string {
	switch {
	case score >= 95:
		return "A+"
	case score >= 90:
		return "A"
	case score >= 85:
		return "B+"
	case score >= 80:
		return "B"
	case score >= 75:
		return "C+"
	case score >= 70:
		return "C"
	case score >= 65:
		return "D"
	default:
		return "F"
	}
}
// #endregion grade

// #region headline
// Headline returns the single score a producer contributes to the composite.
func Headline(rec record.MetricRecord) float64 {
	switch rec.ProducerID {
	case record.Audit:
		return rec.Value(record.KeyQualityScore)
	case record.Robustness:
		return rec.Value(record.KeyPassRate)
	default:
		return rec.Value(record.KeySuccessRate)
	}
}
// #endregion headline

// #region aggregator
// Aggregator combines producer records into a CompositeAssessment.
type Aggregator struct {
	config Config
	now    func() time.Time
}

// NewAggregator creates an aggregator with the given configuration.
func NewAggregator(config Config) *Aggregator {
	return &Aggregator{config: config, now: func() time.Time { return time.Now().UTC() }}
}

// Aggregate scores whatever records are present. A producer without a
// record contributes zero and is reported as a data gap; the remaining
// weights are not renormalized. Later records for the same producer
// replace earlier ones.
func (a *Aggregator) Aggregate(records []record.MetricRecord) CompositeAssessment {
	byID := make(map[record.ProducerID]record.MetricRecord, len(records))
	for _, r := range records {
		if r.ProducerID.Valid() {
			byID[r.ProducerID] = r
		}
	}

	out := CompositeAssessment{
		LaunchChecklist: make(map[string]bool, len(ChecklistItems)+1),
		Blockers:        []Blocker{},
		Risks:           []string{},
		Contributions:   make(map[record.ProducerID]float64, len(record.Producers)),
		Verdicts:        make(map[record.ProducerID]record.Verdict, len(record.Producers)),
		Recommendations: []string{},
		GeneratedAt:     a.now(),
	}

	// --- Weighted composite ---
	for _, id := range record.Producers {
		r, ok := byID[id]
		if !ok {
			out.DataGaps = append(out.DataGaps, id)
			out.Contributions[id] = 0
			continue
		}
		c := a.config.Weights.Of(id) * Headline(r)
		out.Contributions[id] = c
		out.Verdicts[id] = r.ProducerVerdict
		out.WeightedScore += c
	}
	out.Grade = Grade(out.WeightedScore)

	// Absent records read as zero values from here on.
	audit := byID[record.Audit]
	vu := byID[record.VirtualUser]
	rob := byID[record.Robustness]
	dep := byID[record.Deployment]
	depReady := dep.ProducerVerdict == record.VerdictReady || dep.Flag(record.FlagProductionReady)
	health := rob.Label(record.LabelFunctionalityHealth)

	// --- Launch checklist ---
	cl := out.LaunchChecklist
	cl[ItemContent] = audit.Value(record.KeyQualityScore) >= a.config.MinQuality &&
		audit.Value(record.KeyHindiCompleteness) >= a.config.MinHindi
	cl[ItemFunctionality] = health == record.HealthGood || health == record.HealthExcellent
	cl[ItemPerformance] = vu.Value(record.KeyPerformanceScore) >= a.config.MinPerformance
	cl[ItemSecurity] = dep.Flag(record.FlagSecurityChecksRan) && rob.Value(record.KeyCriticalBugCount) == 0
	cl[ItemDeployment] = depReady
	passed := 0
	for _, item := range ChecklistItems {
		if cl[item] {
			passed++
		}
	}
	cl[ItemOverall] = passed >= a.config.ChecklistQuorum

	// --- Blockers ---
	if n := rob.Value(record.KeyCriticalBugCount); n > 0 {
		out.Blockers = append(out.Blockers, Blocker{
			Type:   BlockerCriticalBugs,
			Reason: fmt.Sprintf("robustness reported %.0f critical bug(s)", n),
		})
	}
	if h := audit.Value(record.KeyHindiCompleteness); h < a.config.MinHindi {
		out.Blockers = append(out.Blockers, Blocker{
			Type:   BlockerHindiCompleteness,
			Reason: fmt.Sprintf("Hindi completeness %.1f%% is below %.0f%%", h, a.config.MinHindi),
		})
	}
	if !depReady {
		out.Blockers = append(out.Blockers, Blocker{
			Type:   BlockerDeployment,
			Reason: "deployment is not production-ready",
		})
	}

	// --- Risks ---
	if p := vu.Value(record.KeyPerformanceScore); p < a.config.MinPerformance {
		out.Risks = append(out.Risks, fmt.Sprintf("performance score %.1f is below %.0f", p, a.config.MinPerformance))
	}
	if health == record.HealthFair {
		out.Risks = append(out.Risks, "functionality health is FAIR")
	}
	if n := len(audit.ContentGaps); n > 0 {
		out.Risks = append(out.Risks, fmt.Sprintf("%d content gap(s) reported by the audit", n))
	}
	for _, id := range out.DataGaps {
		out.Risks = append(out.Risks, fmt.Sprintf("data gap: no %s record", id))
	}

	out.Ready = len(out.Blockers) == 0 && cl[ItemOverall] && out.WeightedScore >= a.config.MinReadyScore
	out.Recommendations = recommend(out)
	return out
}
// #endregion aggregator

// #region recommendations
var itemAdvice = map[string]string{
	ItemContent:       "complete Hindi translations and raise content quality",
	ItemFunctionality: "fix failing functional categories in the robustness suite",
	ItemPerformance:   "reduce lesson latency for simulated learners",
	ItemSecurity:      "run deployment security checks and resolve critical bugs",
	ItemDeployment:    "resolve deployment validation failures",
}

// recommend derives advice from failed checklist items, blockers and data gaps.
func recommend(c CompositeAssessment) []string {
	recs := []string{}
	for _, item := range ChecklistItems {
		if !c.LaunchChecklist[item] {
			recs = append(recs, itemAdvice[item])
		}
	}
	for _, id := range c.DataGaps {
		recs = append(recs, fmt.Sprintf("run the %s producer", id))
	}
	if len(recs) == 0 && !c.Ready {
		recs = append(recs, "raise the weighted score to the launch minimum")
	}
	if c.Ready && len(c.Risks) > 0 {
		recs = append(recs, "review non-blocking risks before launch")
	}
	return recs
}
// #endregion recommendations
