package logging

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// #region log-assessment
// LogAssessment appends an entry to the assessment_log table.
func LogAssessment(db *sql.DB, entry AssessmentEntry) error {
	if entry.RunID == "" {
		return fmt.Errorf("log assessment: empty run id")
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	blockers, err := encodeList(entry.Blockers)
	if err != nil {
		return fmt.Errorf("marshal blockers: %w", err)
	}
	gaps, err := encodeList(entry.DataGaps)
	if err != nil {
		return fmt.Errorf("marshal data gaps: %w", err)
	}

	_, err = db.Exec(
		`INSERT INTO assessment_log (run_id, weighted_score, grade, ready, launch_ready, mean_score, mean_grade,
			blockers_json, data_gaps_json, summary_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.RunID,
		entry.WeightedScore,
		entry.Grade,
		boolInt(entry.Ready),
		boolInt(entry.LaunchReady),
		entry.MeanScore,
		entry.MeanGrade,
		blockers,
		gaps,
		nullIfEmpty(entry.SummaryJSON),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log assessment: %w", err)
	}
	return nil
}
// #endregion log-assessment

// #region list-assessments
// ListAssessments returns the most recent entries, newest first. A negative
// limit returns every entry.
func ListAssessments(db *sql.DB, limit int) ([]AssessmentEntry, error) {
	rows, err := db.Query(
		`SELECT id, run_id, weighted_score, grade, ready, launch_ready, mean_score, mean_grade,
			blockers_json, data_gaps_json, summary_json, created_at
		 FROM assessment_log ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer rows.Close()

	var entries []AssessmentEntry
	for rows.Next() {
		var e AssessmentEntry
		var ready, launch int
		var blockers, gaps, summary sql.NullString
		var createdStr string
		if err := rows.Scan(&e.ID, &e.RunID, &e.WeightedScore, &e.Grade, &ready, &launch, &e.MeanScore, &e.MeanGrade,
			&blockers, &gaps, &summary, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		e.Ready = ready != 0
		e.LaunchReady = launch != 0
		if e.Blockers, err = decodeList(blockers); err != nil {
			return nil, fmt.Errorf("decode blockers: %w", err)
		}
		if e.DataGaps, err = decodeList(gaps); err != nil {
			return nil, fmt.Errorf("decode data gaps: %w", err)
		}
		if summary.Valid {
			e.SummaryJSON = summary.String
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
// #endregion list-assessments

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func encodeList(items []string) (interface{}, error) {
	if len(items) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func decodeList(s sql.NullString) ([]string, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	var items []string
	if err := json.Unmarshal([]byte(s.String), &items); err != nil {
		return nil, err
	}
	return items, nil
}
// #endregion helpers
