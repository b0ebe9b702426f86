package replay

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/aggregate"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/producer"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
)

// helper: a deployment record whose stored verdict matches its contents.
func deploymentRecord(success float64) record.MetricRecord {
	rec := record.MetricRecord{
		ProducerID: record.Deployment,
		Timestamp:  time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
		Summary: map[string]float64{
			record.KeySuccessRate: success,
		},
		Flags: map[string]bool{
			record.FlagFunctionalityHealthy: true,
			record.FlagSecurityChecksRan:    true,
		},
		Issues: []record.Issue{},
	}
	rec.ProducerVerdict = producer.DeploymentVerdict(rec)
	rec.Flags[record.FlagProductionReady] = rec.ProducerVerdict == record.VerdictReady
	return rec
}

// 1. A consistent record replays without drift.
func TestReplay_NoDrift(t *testing.T) {
	f := Fixture{Records: []record.MetricRecord{deploymentRecord(99)}}
	res := Replay(f, aggregate.DefaultConfig(), producer.DefaultConfig())
	if len(res.Drift) != 0 {
		t.Errorf("expected no drift, got %+v", res.Drift)
	}
	if res.Assessment.Verdicts[record.Deployment] != record.VerdictReady {
		t.Errorf("expected READY deployment, got %s", res.Assessment.Verdicts[record.Deployment])
	}
}

// 2. A stored verdict that disagrees with the summary is reported as drift.
func TestReplay_DetectsDrift(t *testing.T) {
	rec := deploymentRecord(90) // success below 98: 4 of 5 criteria
	rec.ProducerVerdict = record.VerdictReady
	f := Fixture{Records: []record.MetricRecord{rec}}

	res := Replay(f, aggregate.DefaultConfig(), producer.DefaultConfig())
	if len(res.Drift) != 1 {
		t.Fatalf("expected 1 drift, got %d", len(res.Drift))
	}
	d := res.Drift[0]
	if d.Stored != record.VerdictReady || d.Recomputed != record.VerdictNeedsMinorFixes {
		t.Errorf("unexpected drift %+v", d)
	}

	mismatches := Check(f, res)
	if len(mismatches) != 1 || !strings.Contains(mismatches[0], "verdict drift") {
		t.Errorf("expected one drift mismatch, got %v", mismatches)
	}
}

// 3. Check reports every expectation that does not hold.
func TestCheck_ReportsMismatches(t *testing.T) {
	f := Fixture{Records: []record.MetricRecord{deploymentRecord(99)}}
	res := Replay(f, aggregate.DefaultConfig(), producer.DefaultConfig())

	score := 50.0
	ready := true
	votes := 5
	f.Expected = FixtureExpected{
		WeightedScore: &score,
		Grade:         "A+",
		Ready:         &ready,
		VotesPassed:   &votes,
		DataGaps:      []record.ProducerID{record.Audit},
	}
	got := Check(f, res)
	want := []string{"weighted_score", "grade", "ready", "data_gaps", "votes_passed"}
	if len(got) != len(want) {
		t.Fatalf("expected %d mismatches, got %d: %v", len(want), len(got), got)
	}
	for i, prefix := range want {
		if !strings.HasPrefix(got[i], prefix) {
			t.Errorf("mismatch %d: expected prefix %q, got %q", i, prefix, got[i])
		}
	}
}

// 4. An exported fixture replays cleanly after a write and load.
func TestExport_RoundTrip(t *testing.T) {
	src, err := LoadFixture(filepath.Join("testdata", "launch_ready.json"))
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	f := Export("exported", src.Records, aggregate.DefaultConfig())
	if f.Expected.WeightedScore == nil || f.Expected.VotesPassed == nil {
		t.Fatal("expected export to fill expectations")
	}
	if *f.Expected.VotesPassed != 5 || f.Expected.Grade != "A" {
		t.Errorf("unexpected expectations: votes=%d grade=%s", *f.Expected.VotesPassed, f.Expected.Grade)
	}

	path := filepath.Join(t.TempDir(), "exported.json")
	if err := WriteFixture(path, f); err != nil {
		t.Fatalf("WriteFixture: %v", err)
	}
	loaded, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture exported: %v", err)
	}
	if loaded.Description != "exported" || len(loaded.Records) != len(src.Records) {
		t.Errorf("round trip lost data: %q, %d records", loaded.Description, len(loaded.Records))
	}
	res := Replay(*loaded, aggregate.DefaultConfig(), producer.DefaultConfig())
	if m := Check(*loaded, res); len(m) != 0 {
		t.Errorf("exported fixture does not replay cleanly: %v", m)
	}
}

// 5. Export of an empty record set lists every producer as a data gap.
func TestExport_Empty(t *testing.T) {
	f := Export("empty", nil, aggregate.DefaultConfig())
	if len(f.Expected.DataGaps) != len(record.Producers) {
		t.Errorf("expected %d data gaps, got %v", len(record.Producers), f.Expected.DataGaps)
	}
	if *f.Expected.WeightedScore != 0 || f.Expected.Grade != "F" {
		t.Errorf("expected 0/F, got %v/%s", *f.Expected.WeightedScore, f.Expected.Grade)
	}
}
