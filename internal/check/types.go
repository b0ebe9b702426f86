package check

import (
	"context"
	"fmt"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
)

// #region evaluator-interface

// Evaluator decides the outcome of a single check. Simulated and real checks
// both sit behind this interface so producers never know which one ran.
type Evaluator interface {
	Evaluate(ctx context.Context) (Outcome, error)
}

// EvaluatorFunc adapts a function to Evaluator.
type EvaluatorFunc func(ctx context.Context) (Outcome, error)

// Evaluate calls f.
func (f EvaluatorFunc) Evaluate(ctx context.Context) (Outcome, error) {
	return f(ctx)
}

// #endregion evaluator-interface

// #region outcome

// Outcome is what an evaluator observed.
type Outcome struct {
	Passed     bool
	Severity   record.Severity // severity of a failure; ignored when Passed
	Value      float64         // check-specific measurement (satisfaction, perf score)
	DurationMs float64
	Detail     string
}

// #endregion outcome

// #region check

// Check is one named entry in a producer's battery.
type Check struct {
	Name      string
	Category  string
	Tags      []string
	Evaluator Evaluator
}

// HasTag reports whether the check carries tag.
func (c Check) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// #endregion check

// #region result

// Result pairs a check with its outcome. Err is non-nil when the evaluator
// could not run; such results always count as failed with critical severity.
type Result struct {
	Check   Check
	Outcome Outcome
	Err     error
}

// Executed reports whether the evaluator ran to completion.
func (r Result) Executed() bool {
	return r.Err == nil
}

// #endregion result

// #region execution-error

// ExecutionError wraps a failure to evaluate a check.
type ExecutionError struct {
	Check string
	Err   error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("check %s failed to execute: %v", e.Check, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// #endregion execution-error

// #region rate

// Rate is a pass count over a total.
type Rate struct {
	Passed int
	Total  int
}

// Score returns 100 * passed / total, 0 for an empty category.
func (r Rate) Score() float64 {
	if r.Total == 0 {
		return 0
	}
	return 100 * float64(r.Passed) / float64(r.Total)
}

// #endregion rate
