package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/config"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/orchestrator"
)

// testConfig writes a config that keeps every artifact under a temp dir.
func testConfig(t *testing.T) (path, dir string) {
	t.Helper()
	dir = t.TempDir()
	body := strings.Join([]string{
		"store:",
		"  driver: file",
		"  dir: " + filepath.Join(dir, "records"),
		"summary_path: " + filepath.Join(dir, "reports", "summary.json"),
		"metrics_textfile: " + filepath.Join(dir, "readiness.prom"),
		"producers:",
		"  workers: 4",
		"",
	}, "\n")
	path = filepath.Join(dir, "readiness.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path, dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "readiness version "+Version)
}

func TestRun_WritesSummaryAndMetrics(t *testing.T) {
	cfg, dir := testConfig(t)

	out, err := execute(t, "-c", cfg, "run", "--json", "--parallel")
	require.NoError(t, err)

	var printed orchestrator.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &printed))
	assert.Len(t, printed.Phases, len(orchestrator.Phases))
	assert.Len(t, printed.Producers, 4)
	assert.Empty(t, printed.Aggregator.DataGaps)

	data, err := os.ReadFile(filepath.Join(dir, "reports", "summary.json"))
	require.NoError(t, err)
	var written orchestrator.Summary
	require.NoError(t, json.Unmarshal(data, &written))
	assert.Equal(t, printed.RunID, written.RunID)

	prom, err := os.ReadFile(filepath.Join(dir, "readiness.prom"))
	require.NoError(t, err)
	assert.Contains(t, string(prom), "readiness_weighted_score")

	for _, name := range []string{"audit.json", "virtualUser.json", "robustness.json", "deployment.json"} {
		assert.FileExists(t, filepath.Join(dir, "records", name))
	}
}

func TestProduceThenDashboard(t *testing.T) {
	cfg, _ := testConfig(t)

	out, err := execute(t, "-c", cfg, "produce", "audit")
	require.NoError(t, err)
	assert.Contains(t, out, "audit: ")

	out, err = execute(t, "-c", cfg, "dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, "no record")
	assert.Contains(t, out, "launchReady: NO")
}

func TestProduce_UnknownProducer(t *testing.T) {
	cfg, _ := testConfig(t)
	_, err := execute(t, "-c", cfg, "produce", "nobody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown producer")
}

func TestExportFixtureThenReplay(t *testing.T) {
	cfg, dir := testConfig(t)
	_, err := execute(t, "-c", cfg, "run")
	require.NoError(t, err)

	fixture := filepath.Join(dir, "fixture.json")
	out, err := execute(t, "-c", cfg, "export-fixture", "-o", fixture)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 4 record(s)")

	out, err = execute(t, "-c", cfg, "replay", fixture)
	require.NoError(t, err)
	assert.Contains(t, out, "OK")
}

func TestExportFixture_EmptyStore(t *testing.T) {
	cfg, dir := testConfig(t)
	_, err := execute(t, "-c", cfg, "export-fixture", "-o", filepath.Join(dir, "fixture.json"))
	require.Error(t, err)
}

func TestReplay_Testdata(t *testing.T) {
	cfg, _ := testConfig(t)
	out, err := execute(t, "-c", cfg, "replay", filepath.Join("..", "..", "internal", "replay", "testdata", "launch_ready.json"))
	require.NoError(t, err)
	assert.Contains(t, out, "launchReady=true")
}

func TestConfigInit_WritesLoadableDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "readiness.yaml")
	out, err := execute(t, "config", "init", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote default config")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	defaults := config.DefaultConfig()
	assert.Equal(t, defaults.Producers.Seed, cfg.Producers.Seed)
	assert.Equal(t, defaults.Producers.Robustness.FunctionalLatencyMs, cfg.Producers.Robustness.FunctionalLatencyMs)
	assert.Equal(t, defaults.Aggregate, cfg.Aggregate)

	_, err = execute(t, "config", "init", "-o", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "config", "init", "-o", path, "--force")
	require.NoError(t, err)
}
