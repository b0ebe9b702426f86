package record

import (
	"fmt"
	"strings"
)

// #region verdict-ladder

// Verdict ladder thresholds, inclusive lower bounds.
const (
	ReadyThreshold      = 90.0
	MinorFixesThreshold = 75.0
	MajorFixesThreshold = 60.0
)

// ClassifyVerdict maps a producer readiness score onto the verdict ladder.
func ClassifyVerdict(score float64) Verdict {
	switch {
	case score >= ReadyThreshold:
		return VerdictReady
	case score >= MinorFixesThreshold:
		return VerdictNeedsMinorFixes
	case score >= MajorFixesThreshold:
		return VerdictNeedsMajorFixes
	default:
		return VerdictNotReady
	}
}

// rank orders verdicts from best (0) to worst (3).
func (v Verdict) rank() int {
	switch v {
	case VerdictReady:
		return 0
	case VerdictNeedsMinorFixes:
		return 1
	case VerdictNeedsMajorFixes:
		return 2
	default:
		return 3
	}
}

// AtMost returns the worse of v and ceiling.
func (v Verdict) AtMost(ceiling Verdict) Verdict {
	if v.rank() < ceiling.rank() {
		return ceiling
	}
	return v
}

// ContainsReady reports whether the verdict text contains "READY".
// NOT_READY matches as well; callers relying on this keep that behavior.
func (v Verdict) ContainsReady() bool {
	return strings.Contains(string(v), string(VerdictReady))
}

// #endregion verdict-ladder

// #region accessors

// Value returns a summary value, 0 when absent.
func (r MetricRecord) Value(key string) float64 {
	return r.Summary[key]
}

// Flag returns a named flag, false when absent.
func (r MetricRecord) Flag(key string) bool {
	return r.Flags[key]
}

// Label returns a named label, empty when absent.
func (r MetricRecord) Label(key string) string {
	return r.Labels[key]
}

// CountIssues counts issues with the given severity.
func CountIssues(issues []Issue, sev Severity) int {
	n := 0
	for _, is := range issues {
		if is.Severity == sev {
			n++
		}
	}
	return n
}

// #endregion accessors

// #region validate

// Validate checks the fields required for interop with the aggregator.
func (r MetricRecord) Validate() error {
	if !r.ProducerID.Valid() {
		return fmt.Errorf("unknown producer id %q", r.ProducerID)
	}
	if r.Timestamp.IsZero() {
		return fmt.Errorf("%s: missing timestamp", r.ProducerID)
	}
	switch r.ProducerVerdict {
	case VerdictReady, VerdictNeedsMinorFixes, VerdictNeedsMajorFixes, VerdictNotReady:
	default:
		return fmt.Errorf("%s: unknown verdict %q", r.ProducerID, r.ProducerVerdict)
	}
	for i, is := range r.Issues {
		if !is.Severity.Valid() {
			return fmt.Errorf("%s: issue %d has unknown severity %q", r.ProducerID, i, is.Severity)
		}
	}
	return nil
}

// #endregion validate
