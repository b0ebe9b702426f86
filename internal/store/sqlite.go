package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS metric_records (
	producer_id   TEXT PRIMARY KEY,
	run_id        TEXT,
	verdict       TEXT NOT NULL,
	score         REAL NOT NULL,
	record_json   TEXT NOT NULL,
	created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS record_history (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id        TEXT,
	producer_id   TEXT NOT NULL,
	verdict       TEXT NOT NULL,
	score         REAL NOT NULL,
	record_json   TEXT NOT NULL,
	created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS assessment_log (
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
);
`
// #endregion schema

// #region sqlite-store
// SQLiteStore keeps the latest record per producer plus an append-only
// history of every write.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens a SQLite database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// Producers may write concurrently; one connection serializes them.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}
// #endregion sqlite-store

// #region put
// Put upserts the latest record and appends it to the history in one transaction.
func (s *SQLiteStore) Put(rec record.MetricRecord) error {
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("put record: %w", err)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	created := rec.Timestamp.UTC().Format(time.RFC3339Nano)
	score := rec.Value(record.KeyReadinessScore)

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO metric_records (producer_id, run_id, verdict, score, record_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(producer_id) DO UPDATE SET
			run_id = excluded.run_id, verdict = excluded.verdict, score = excluded.score,
			record_json = excluded.record_json, created_at = excluded.created_at`,
		string(rec.ProducerID), nullIfEmpty(rec.RunID), string(rec.ProducerVerdict), score, string(data), created,
	)
	if err != nil {
		return fmt.Errorf("upsert record: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO record_history (run_id, producer_id, verdict, score, record_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		nullIfEmpty(rec.RunID), string(rec.ProducerID), string(rec.ProducerVerdict), score, string(data), created,
	)
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
// #endregion put

// #region get
// Get reads the latest record for id, or ErrNotFound.
func (s *SQLiteStore) Get(id record.ProducerID) (record.MetricRecord, error) {
	var data string
	err := s.db.QueryRow(`SELECT record_json FROM metric_records WHERE producer_id = ?`, string(id)).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return record.MetricRecord{}, fmt.Errorf("get %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return record.MetricRecord{}, fmt.Errorf("get %s: %w", id, err)
	}
	var rec record.MetricRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return record.MetricRecord{}, fmt.Errorf("decode %s: %w", id, err)
	}
	return rec, nil
}
// #endregion get

// #region history
// History returns the most recent writes, newest first. An empty id lists all producers.
func (s *SQLiteStore) History(id record.ProducerID, limit int) ([]HistoryEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, producer_id, verdict, score, created_at FROM record_history
		 WHERE ? = '' OR producer_id = ?
		 ORDER BY id DESC LIMIT ?`, string(id), string(id), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var runID sql.NullString
		var producer, verdict, createdStr string
		if err := rows.Scan(&e.ID, &runID, &producer, &verdict, &e.Score, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if runID.Valid {
			e.RunID = runID.String
		}
		e.ProducerID = record.ProducerID(producer)
		e.Verdict = record.Verdict(verdict)
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
// #endregion history

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
