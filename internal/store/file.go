package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
)

// #region file-store
// FileStore keeps one <producerId>.json file per producer in a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates dir if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("file store: empty directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory the store writes to.
func (s *FileStore) Dir() string { return s.dir }

// Path returns the file holding the record for id.
func (s *FileStore) Path(id record.ProducerID) string {
	return filepath.Join(s.dir, string(id)+".json")
}
// #endregion file-store

// #region put
// Put writes rec to a temp file and renames it over the previous record.
func (s *FileStore) Put(rec record.MetricRecord) error {
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("put record: %w", err)
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+string(rec.ProducerID)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path(rec.ProducerID)); err != nil {
		return fmt.Errorf("rename record: %w", err)
	}
	return nil
}
// #endregion put

// #region get
// Get reads the record for id, or ErrNotFound.
func (s *FileStore) Get(id record.ProducerID) (record.MetricRecord, error) {
	data, err := os.ReadFile(s.Path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return record.MetricRecord{}, fmt.Errorf("get %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return record.MetricRecord{}, fmt.Errorf("read %s: %w", id, err)
	}
	var rec record.MetricRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return record.MetricRecord{}, fmt.Errorf("decode %s: %w", id, err)
	}
	return rec, nil
}
// #endregion get

// Close is a no-op for the file store.
func (s *FileStore) Close() error { return nil }
