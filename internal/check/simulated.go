package check

import (
	"context"
	"errors"
	"hash/fnv"
	"math/rand"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
)

// #region simulated

// ErrSimulated is returned by Simulated when the draw says the check could not run.
var ErrSimulated = errors.New("simulated execution error")

// Simulated draws a pass/fail outcome from a uniform random source, the way
// the mock test scripts did, but seeded per check so a rerun with the same
// seed reproduces the same outcome regardless of evaluation order.
type Simulated struct {
	Seed     int64
	Name     string
	PassRate float64    // probability of passing, e.g. 0.9
	ErrRate  float64    // probability the check cannot run at all
	Value    [2]float64 // measurement drawn uniformly from [lo, hi)
	Latency  [2]float64 // duration in ms drawn uniformly from [lo, hi)

	// FailSeverities is sampled uniformly for failures; defaults to medium.
	FailSeverities []record.Severity
}

// Evaluate draws the outcome. Draw order is fixed: error, pass, value, latency, severity.
func (s Simulated) Evaluate(ctx context.Context) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	r := rand.New(rand.NewSource(s.Seed ^ nameHash(s.Name)))

	if r.Float64() < s.ErrRate {
		return Outcome{}, ErrSimulated
	}

	out := Outcome{Passed: r.Float64() < s.PassRate}
	out.Value = between(r, s.Value)
	out.DurationMs = between(r, s.Latency)
	if !out.Passed {
		out.Severity = record.SeverityMedium
		if len(s.FailSeverities) > 0 {
			out.Severity = s.FailSeverities[r.Intn(len(s.FailSeverities))]
		}
	}
	return out, nil
}

func between(r *rand.Rand, span [2]float64) float64 {
	lo, hi := span[0], span[1]
	v := r.Float64()
	if hi <= lo {
		return lo
	}
	return lo + v*(hi-lo)
}

func nameHash(name string) int64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return int64(h.Sum64())
}

// #endregion simulated

// #region fixed

// Fixed always returns the same outcome. Used for scripted batteries.
type Fixed Outcome

// Evaluate returns the fixed outcome.
func (f Fixed) Evaluate(_ context.Context) (Outcome, error) {
	return Outcome(f), nil
}

// Pass is a Fixed evaluator that passes.
func Pass() Fixed {
	return Fixed{Passed: true}
}

// Fail is a Fixed evaluator that fails with sev.
func Fail(sev record.Severity) Fixed {
	return Fixed{Passed: false, Severity: sev}
}

// #endregion fixed
