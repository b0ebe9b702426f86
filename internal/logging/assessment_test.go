package logging

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// #region helpers
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	_, err = db.Exec(`CREATE TABLE assessment_log (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id          TEXT NOT NULL,
		weighted_score  REAL NOT NULL,
		grade           TEXT NOT NULL,
		ready           INTEGER NOT NULL,
		launch_ready    INTEGER NOT NULL,
		mean_score      REAL NOT NULL,
		mean_grade      TEXT NOT NULL,
		blockers_json   TEXT,
		data_gaps_json  TEXT,
		summary_json    TEXT,
		created_at      TEXT NOT NULL
	)`)
	if err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}

// #endregion helpers

// #region log-assessment-tests
func TestLogAssessment_RoundTrip(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	entry := AssessmentEntry{
		RunID:         "run-1",
		WeightedScore: 91.25,
		Grade:         "A",
		Ready:         false,
		LaunchReady:   true,
		MeanScore:     92,
		MeanGrade:     "A",
		Blockers:      []string{"robustness reported 1 critical bug(s)"},
		DataGaps:      []string{"virtualUser"},
		SummaryJSON:   `{"launchReady":true}`,
		CreatedAt:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := LogAssessment(db, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := ListAssessments(db, 10)
	if err != nil {
		t.Fatalf("ListAssessments: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
	e := got[0]
	if e.RunID != "run-1" || e.Grade != "A" || e.WeightedScore != 91.25 {
		t.Errorf("unexpected entry: %+v", e)
	}
	if e.Ready || !e.LaunchReady {
		t.Errorf("expected ready=false launchReady=true, got %v %v", e.Ready, e.LaunchReady)
	}
	if len(e.Blockers) != 1 || len(e.DataGaps) != 1 || e.DataGaps[0] != "virtualUser" {
		t.Errorf("lists not round-tripped: %v %v", e.Blockers, e.DataGaps)
	}
	if !e.CreatedAt.Equal(entry.CreatedAt) {
		t.Errorf("expected created_at %v, got %v", entry.CreatedAt, e.CreatedAt)
	}
}

func TestLogAssessment_ZeroCreatedAtAndEmptyLists(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	before := time.Now().UTC().Add(-time.Second)
	if err := LogAssessment(db, AssessmentEntry{RunID: "run-2", Grade: "F", MeanGrade: "F"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var blockers sql.NullString
	var createdStr string
	db.QueryRow("SELECT blockers_json, created_at FROM assessment_log").Scan(&blockers, &createdStr)
	if blockers.Valid {
		t.Errorf("expected NULL blockers_json, got %q", blockers.String)
	}
	created, err := time.Parse(time.RFC3339Nano, createdStr)
	if err != nil {
		t.Fatalf("parse created_at: %v", err)
	}
	if created.Before(before) {
		t.Errorf("expected created_at to be set to now, got %v", created)
	}
}

func TestLogAssessment_EmptyRunID(t *testing.T) {
	db := setupDB(t)
	defer db.Close()
	if err := LogAssessment(db, AssessmentEntry{}); err == nil {
		t.Fatal("expected error for empty run id")
	}
}

func TestLogAssessment_MissingTable(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()
	if err := LogAssessment(db, AssessmentEntry{RunID: "r"}); err == nil {
		t.Fatal("expected error without table")
	}
}

func TestListAssessments_NewestFirstWithLimit(t *testing.T) {
	db := setupDB(t)
	defer db.Close()
	for _, id := range []string{"a", "b", "c"} {
		if err := LogAssessment(db, AssessmentEntry{RunID: id, Grade: "B", MeanGrade: "B"}); err != nil {
			t.Fatalf("log %s: %v", id, err)
		}
	}
	got, err := ListAssessments(db, 2)
	if err != nil {
		t.Fatalf("ListAssessments: %v", err)
	}
	if len(got) != 2 || got[0].RunID != "c" || got[1].RunID != "b" {
		t.Errorf("unexpected order: %+v", got)
	}
}
// #endregion log-assessment-tests
