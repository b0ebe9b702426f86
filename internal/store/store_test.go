package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
)

func sampleRecord(id record.ProducerID, score float64) record.MetricRecord {
	return record.MetricRecord{
		ProducerID:      id,
		Timestamp:       time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		RunID:           "run-1",
		Summary:         map[string]float64{record.KeyReadinessScore: score, record.KeySuccessRate: score},
		Issues:          []record.Issue{{Description: "slow page", Severity: record.SeverityLow}},
		ProducerVerdict: record.ClassifyVerdict(score),
	}
}

func tempFileStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(filepath.Join(t.TempDir(), "records"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return s
}

func tempSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// #region contract-tests
func testStoreContract(t *testing.T, s RecordStore) {
	t.Helper()

	if _, err := s.Get(record.Audit); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := s.Put(sampleRecord(record.Audit, 70)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put(sampleRecord(record.Audit, 92)); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}

	got, err := s.Get(record.Audit)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Value(record.KeyReadinessScore) != 92 {
		t.Errorf("expected last write to win, got score %v", got.Value(record.KeyReadinessScore))
	}
	if got.ProducerVerdict != record.VerdictReady {
		t.Errorf("expected READY, got %s", got.ProducerVerdict)
	}
	if len(got.Issues) != 1 || got.Issues[0].Severity != record.SeverityLow {
		t.Errorf("issues not round-tripped: %+v", got.Issues)
	}
	if !got.Timestamp.Equal(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("timestamp not round-tripped: %v", got.Timestamp)
	}

	if err := s.Put(record.MetricRecord{ProducerID: "bogus"}); err == nil {
		t.Error("expected invalid record to be rejected")
	}
}

func TestFileStore_Contract(t *testing.T) {
	testStoreContract(t, tempFileStore(t))
}

func TestSQLiteStore_Contract(t *testing.T) {
	testStoreContract(t, tempSQLiteStore(t))
}
// #endregion contract-tests

// #region file-store-tests
func TestFileStore_OneFilePerProducerNoTempLeft(t *testing.T) {
	s := tempFileStore(t)
	for _, id := range record.Producers {
		if err := s.Put(sampleRecord(id, 80)); err != nil {
			t.Fatalf("Put %s: %v", id, err)
		}
	}
	entries, err := os.ReadDir(s.Dir())
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != len(record.Producers) {
		t.Fatalf("expected %d files, got %d", len(record.Producers), len(entries))
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) != ".json" {
			t.Errorf("unexpected file %s", e.Name())
		}
	}
}

func TestFileStore_CorruptRecord(t *testing.T) {
	s := tempFileStore(t)
	if err := os.WriteFile(s.Path(record.Robustness), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := s.Get(record.Robustness)
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestNewFileStore_EmptyDir(t *testing.T) {
	if _, err := NewFileStore(""); err == nil {
		t.Fatal("expected error for empty dir")
	}
}
// #endregion file-store-tests

// #region sqlite-store-tests
func TestSQLiteStore_HistoryKeepsEveryWrite(t *testing.T) {
	s := tempSQLiteStore(t)
	for i, score := range []float64{50, 65, 91} {
		rec := sampleRecord(record.Deployment, score)
		rec.Timestamp = rec.Timestamp.Add(time.Duration(i) * time.Minute)
		if err := s.Put(rec); err != nil {
			t.Fatalf("Put: %v", err)
		}
	}
	if err := s.Put(sampleRecord(record.Audit, 80)); err != nil {
		t.Fatalf("Put audit: %v", err)
	}

	hist, err := s.History(record.Deployment, 10)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(hist) != 3 {
		t.Fatalf("expected 3 history rows, got %d", len(hist))
	}
	if hist[0].Score != 91 || hist[0].Verdict != record.VerdictReady {
		t.Errorf("expected newest first, got %+v", hist[0])
	}
	if hist[2].Verdict != record.VerdictNotReady {
		t.Errorf("expected oldest NOT_READY, got %s", hist[2].Verdict)
	}

	all, err := s.History("", 10)
	if err != nil {
		t.Fatalf("History all: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("expected 4 rows across producers, got %d", len(all))
	}
}

func TestOpen_Drivers(t *testing.T) {
	dir := t.TempDir()
	for _, driver := range []string{"file", "sqlite"} {
		s, err := Open(Config{Driver: driver, Dir: filepath.Join(dir, "records"), DBPath: filepath.Join(dir, "r.db")})
		if err != nil {
			t.Fatalf("Open %s: %v", driver, err)
		}
		s.Close()
	}
	if _, err := Open(Config{Driver: "redis"}); err == nil {
		t.Error("expected unknown driver error")
	}
}
// #endregion sqlite-store-tests

// #region load-all-tests
func TestLoadAll_ReportsMissingAndUnreadable(t *testing.T) {
	s := tempFileStore(t)
	s.Put(sampleRecord(record.Audit, 90))
	s.Put(sampleRecord(record.Deployment, 90))
	os.WriteFile(s.Path(record.Robustness), []byte("garbage"), 0o644)

	recs, missing := LoadAll(s)
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].ProducerID != record.Audit || recs[1].ProducerID != record.Deployment {
		t.Errorf("expected pipeline order, got %s, %s", recs[0].ProducerID, recs[1].ProducerID)
	}
	if len(missing) != 2 || missing[0] != record.VirtualUser || missing[1] != record.Robustness {
		t.Errorf("unexpected missing: %v", missing)
	}
}
// #endregion load-all-tests

// #region watch-tests
func TestWatch_DebouncesRecordWrites(t *testing.T) {
	s := tempFileStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, s.Dir(), 100*time.Millisecond, func() { calls.Add(1) })
	}()
	time.Sleep(100 * time.Millisecond)

	for _, id := range record.Producers {
		if err := s.Put(sampleRecord(id, 85)); err != nil {
			t.Fatalf("Put: %v", err)
		}
	}

	deadline := time.Now().Add(3 * time.Second)
	for calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	if calls.Load() == 0 {
		t.Fatal("expected onChange to fire")
	}
	time.Sleep(300 * time.Millisecond)
	if n := calls.Load(); n != 1 {
		t.Errorf("expected one debounced call, got %d", n)
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Watch returned %v", err)
	}
}

func TestWatch_MissingDir(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope"), 0, func() {})
	if err == nil {
		t.Fatal("expected error for missing dir")
	}
}
// #endregion watch-tests
