package check

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
)

// #region run-battery

// RunBattery evaluates every check, at most workers at a time, and returns
// results in battery order. A failing or panicking evaluator never aborts
// the battery; it yields a failed result carrying an *ExecutionError.
func RunBattery(ctx context.Context, checks []Check, workers int) []Result {
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(checks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, c := range checks {
		i, c := i, c
		g.Go(func() error {
			results[i] = evaluate(gctx, c)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// evaluate runs one check and converts errors and panics into failed results.
func evaluate(ctx context.Context, c Check) (res Result) {
	res.Check = c
	defer func() {
		if p := recover(); p != nil {
			res.Outcome = Outcome{Passed: false, Severity: record.SeverityCritical}
			res.Err = &ExecutionError{Check: c.Name, Err: fmt.Errorf("panic: %v", p)}
		}
	}()

	if c.Evaluator == nil {
		res.Outcome = Outcome{Severity: record.SeverityCritical}
		res.Err = &ExecutionError{Check: c.Name, Err: errors.New("no evaluator")}
		return res
	}

	out, err := c.Evaluator.Evaluate(ctx)
	if err != nil {
		res.Outcome = Outcome{Passed: false, Severity: record.SeverityCritical, DurationMs: out.DurationMs}
		res.Err = &ExecutionError{Check: c.Name, Err: err}
		return res
	}
	if !out.Passed && !out.Severity.Valid() {
		out.Severity = record.SeverityMedium
	}
	res.Outcome = out
	return res
}

// #endregion run-battery

// #region issues

// Issues converts failed results into issues, in battery order.
func Issues(results []Result) []record.Issue {
	var issues []record.Issue
	for _, r := range results {
		switch {
		case r.Err != nil:
			issues = append(issues, record.Issue{
				Description: r.Err.Error(),
				Severity:    record.SeverityCritical,
				Check:       r.Check.Name,
			})
		case !r.Outcome.Passed:
			desc := fmt.Sprintf("%s failed", r.Check.Name)
			if r.Outcome.Detail != "" {
				desc = fmt.Sprintf("%s failed: %s", r.Check.Name, r.Outcome.Detail)
			}
			issues = append(issues, record.Issue{
				Description: desc,
				Severity:    r.Outcome.Severity,
				Check:       r.Check.Name,
			})
		}
	}
	return issues
}

// #endregion issues

// #region rates

// Overall returns the pass rate across all results.
func Overall(results []Result) Rate {
	var rate Rate
	for _, r := range results {
		rate.Total++
		if r.Executed() && r.Outcome.Passed {
			rate.Passed++
		}
	}
	return rate
}

// CategoryRates groups pass rates by check category.
func CategoryRates(results []Result) map[string]Rate {
	rates := make(map[string]Rate)
	for _, r := range results {
		rate := rates[r.Check.Category]
		rate.Total++
		if r.Executed() && r.Outcome.Passed {
			rate.Passed++
		}
		rates[r.Check.Category] = rate
	}
	return rates
}

// Categories returns the category names of rates in sorted order.
func Categories(rates map[string]Rate) []string {
	names := make([]string, 0, len(rates))
	for name := range rates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Filter returns the results whose check satisfies keep.
func Filter(results []Result, keep func(Check) bool) []Result {
	var out []Result
	for _, r := range results {
		if keep(r.Check) {
			out = append(out, r)
		}
	}
	return out
}

// MeanValue averages Outcome.Value over executed results, 0 if none ran.
func MeanValue(results []Result) float64 {
	var sum float64
	n := 0
	for _, r := range results {
		if !r.Executed() {
			continue
		}
		sum += r.Outcome.Value
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// MeanDuration averages Outcome.DurationMs over executed results, 0 if none ran.
func MeanDuration(results []Result) float64 {
	var sum float64
	n := 0
	for _, r := range results {
		if !r.Executed() {
			continue
		}
		sum += r.Outcome.DurationMs
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// #endregion rates
