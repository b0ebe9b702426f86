package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/logging"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/store"
)

// #region main

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var errUsage = errors.New("usage")

// options are the parsed command-line flags.
type options struct {
	dbPath      string
	producer    string
	last        int
	assessments bool
	runID       string
	jsonOut     bool
}

func run(args []string, w io.Writer) error {
	var opts options
	flagSet := pflag.NewFlagSet("inspect", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&opts.dbPath, "db", "", "path to the readiness SQLite database")
	flagSet.StringVarP(&opts.producer, "producer", "p", "", "limit record history to one producer")
	flagSet.IntVarP(&opts.last, "last", "n", 20, "show N most recent entries")
	flagSet.BoolVarP(&opts.assessments, "assessments", "a", false, "list assessment history instead of records")
	flagSet.StringVar(&opts.runID, "run", "", "show the stored summary of one assessment run")
	flagSet.BoolVar(&opts.jsonOut, "json", false, "output as JSON instead of table")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(w, flagSet)
			return nil
		}
		return err
	}
	if opts.dbPath == "" {
		printHelp(os.Stderr, flagSet)
		return errUsage
	}
	if opts.producer != "" && !record.ProducerID(opts.producer).Valid() {
		return fmt.Errorf("unknown producer %q", opts.producer)
	}

	st, err := store.NewSQLiteStore(opts.dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer st.Close()

	switch {
	case opts.runID != "":
		return runDetailMode(w, st, opts)
	case opts.assessments:
		return runAssessmentMode(w, st, opts)
	default:
		return runRecordMode(w, st, opts)
	}
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `inspect lists readiness records and assessments kept in the SQLite store.

Usage:
  inspect --db readiness.db [--producer id] [--last N] [--json]
  inspect --db readiness.db --assessments [--last N] [--json]
  inspect --db readiness.db --run <run-id>

Flags:
%s`, flagSet.FlagUsages())
}

// #endregion main

// #region record-mode

type recordRow struct {
	ProducerID record.ProducerID `json:"producer_id"`
	Verdict    record.Verdict    `json:"verdict"`
	Score      float64           `json:"score"`
	Issues     int               `json:"issues"`
	RunID      string            `json:"run_id,omitempty"`
	Timestamp  string            `json:"timestamp"`
}

type recordOutput struct {
	Latest  []recordRow          `json:"latest"`
	Missing []record.ProducerID  `json:"missing"`
	History []store.HistoryEntry `json:"history"`
}

func runRecordMode(w io.Writer, st *store.SQLiteStore, opts options) error {
	records, missing := store.LoadAll(st)
	out := recordOutput{Missing: missing, Latest: []recordRow{}}
	for _, r := range records {
		if opts.producer != "" && string(r.ProducerID) != opts.producer {
			continue
		}
		out.Latest = append(out.Latest, recordRow{
			ProducerID: r.ProducerID,
			Verdict:    r.ProducerVerdict,
			Score:      r.Value(record.KeyReadinessScore),
			Issues:     len(r.Issues),
			RunID:      r.RunID,
			Timestamp:  r.Timestamp.Format("2006-01-02T15:04:05Z"),
		})
	}
	history, err := st.History(record.ProducerID(opts.producer), opts.last)
	if err != nil {
		return err
	}
	out.History = history

	if opts.jsonOut {
		return printJSON(w, out)
	}

	fmt.Fprintf(w, "%-12s  %-18s  %6s  %6s  %-8s  %s\n", "Producer", "Verdict", "Score", "Issues", "Run", "Time")
	fmt.Fprintf(w, "%-12s+-%-18s+-%6s+-%6s+-%-8s+-%s\n",
		"------------", "------------------", "------", "------", "--------", "--------------------")
	for _, r := range out.Latest {
		fmt.Fprintf(w, "%-12s  %-18s  %6.1f  %6d  %-8s  %s\n",
			r.ProducerID, r.Verdict, r.Score, r.Issues, shortID(r.RunID), r.Timestamp)
	}
	if len(missing) > 0 && opts.producer == "" {
		fmt.Fprintf(w, "\nMissing: %s\n", joinIDs(missing))
	}

	if len(history) == 0 {
		return nil
	}
	fmt.Fprintf(w, "\nHistory (newest first):\n")
	for _, h := range history {
		fmt.Fprintf(w, "  %5d  %-12s  %-18s  %6.1f  %-8s  %s\n",
			h.ID, h.ProducerID, h.Verdict, h.Score, shortID(h.RunID), h.CreatedAt.Format("2006-01-02T15:04:05Z"))
	}
	return nil
}

// #endregion record-mode

// #region assessment-mode

func runAssessmentMode(w io.Writer, st *store.SQLiteStore, opts options) error {
	entries, err := logging.ListAssessments(st.DB(), opts.last)
	if err != nil {
		return err
	}
	if opts.jsonOut {
		for i := range entries {
			entries[i].SummaryJSON = ""
		}
		return printJSON(w, entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "no assessments found")
		return nil
	}

	fmt.Fprintf(w, "%-8s  %8s  %-5s  %-5s  %-11s  %8s  %-5s  %s\n",
		"Run", "Weighted", "Grade", "Ready", "LaunchReady", "Mean", "Grade", "Time")
	for _, e := range entries {
		fmt.Fprintf(w, "%-8s  %8.2f  %-5s  %-5v  %-11v  %8.2f  %-5s  %s\n",
			shortID(e.RunID), e.WeightedScore, e.Grade, e.Ready, e.LaunchReady, e.MeanScore, e.MeanGrade,
			e.CreatedAt.Format("2006-01-02T15:04:05Z"))
		for _, b := range e.Blockers {
			fmt.Fprintf(w, "          blocker: %s\n", b)
		}
		if len(e.DataGaps) > 0 {
			fmt.Fprintf(w, "          data gaps: %s\n", strings.Join(e.DataGaps, ", "))
		}
	}
	return nil
}

// runDetailMode prints the stored summary of the assessment whose run ID
// starts with opts.runID.
func runDetailMode(w io.Writer, st *store.SQLiteStore, opts options) error {
	entries, err := logging.ListAssessments(st.DB(), -1)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if !strings.HasPrefix(e.RunID, opts.runID) {
			continue
		}
		if e.SummaryJSON == "" {
			return fmt.Errorf("run %s has no stored summary", e.RunID)
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(e.SummaryJSON), "", "  "); err != nil {
			return fmt.Errorf("indent summary: %w", err)
		}
		fmt.Fprintln(w, buf.String())
		return nil
	}
	return fmt.Errorf("no assessment with run id %q", opts.runID)
}

// #endregion assessment-mode

// #region output

func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func joinIDs(ids []record.ProducerID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ", ")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
