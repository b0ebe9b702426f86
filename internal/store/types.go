package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
)

// ErrNotFound is returned by Get when no record exists for a producer.
var ErrNotFound = errors.New("record not found")

// #region record-store
// RecordStore persists the latest MetricRecord per producer. Put overwrites
// any prior record for the same producer.
type RecordStore interface {
	Put(rec record.MetricRecord) error
	Get(id record.ProducerID) (record.MetricRecord, error)
	Close() error
}
// #endregion record-store

// #region history-entry
// HistoryEntry is one past write kept by the SQLite store.
type HistoryEntry struct {
	ID         int64
	RunID      string
	ProducerID record.ProducerID
	Verdict    record.Verdict
	Score      float64
	CreatedAt  time.Time
}
// #endregion history-entry

// #region config
// Config selects and locates the record store.
type Config struct {
	Driver string `yaml:"driver"` // "file" | "sqlite"
	Dir    string `yaml:"dir"`    // file store directory
	DBPath string `yaml:"db"`     // sqlite database path
}

// DefaultConfig returns a file store under ./readiness-records.
func DefaultConfig() Config {
	return Config{
		Driver: "file",
		Dir:    "readiness-records",
		DBPath: "readiness.db",
	}
}

// Open returns the store selected by cfg.Driver.
func Open(cfg Config) (RecordStore, error) {
	switch cfg.Driver {
	case "", "file":
		return NewFileStore(cfg.Dir)
	case "sqlite":
		return NewSQLiteStore(cfg.DBPath)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
// #endregion config
