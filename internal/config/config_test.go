package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "readiness.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Store.Driver != "file" {
		t.Errorf("expected file driver, got %s", cfg.Store.Driver)
	}
	if cfg.Aggregate.Weights.Audit != 0.30 {
		t.Errorf("expected audit weight 0.30, got %v", cfg.Aggregate.Weights.Audit)
	}
	if cfg.Producers.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Producers.Seed)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{name: "valid default config", modify: func(c *Config) {}},
		{name: "weights off by one", modify: func(c *Config) { c.Aggregate.Weights.Audit = 0.5 }, wantErr: true},
		{name: "unknown driver", modify: func(c *Config) { c.Store.Driver = "redis" }, wantErr: true},
		{name: "file driver without dir", modify: func(c *Config) { c.Store.Dir = "" }, wantErr: true},
		{name: "sqlite driver without db", modify: func(c *Config) { c.Store.Driver = "sqlite"; c.Store.DBPath = "" }, wantErr: true},
		{name: "no workers", modify: func(c *Config) { c.Producers.Workers = 0 }, wantErr: true},
		{name: "pass rate above 1", modify: func(c *Config) { c.Producers.Robustness.PassRate = 1.5 }, wantErr: true},
		{name: "negative gap limit", modify: func(c *Config) { c.Producers.Audit.MaxContentGaps = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_FileOverDefaults(t *testing.T) {
	path := writeConfig(t, `
store:
  driver: sqlite
  db: /tmp/readiness-test.db
producers:
  seed: 7
  deployment:
    health_targets:
      - name: api
        addr: localhost:50051
        timeout: 2s
orchestrator:
  parallel: true
  glossary:
    notebook: नोटबुक
summary_path: out/summary.json
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store.Driver != "sqlite" || cfg.Store.DBPath != "/tmp/readiness-test.db" {
		t.Errorf("store not loaded: %+v", cfg.Store)
	}
	if cfg.Store.Dir != "readiness-records" {
		t.Errorf("expected default dir to survive, got %s", cfg.Store.Dir)
	}
	if cfg.Producers.Seed != 7 || cfg.Producers.Workers != 8 {
		t.Errorf("expected seed 7 and default workers, got %d/%d", cfg.Producers.Seed, cfg.Producers.Workers)
	}
	targets := cfg.Producers.Deployment.HealthTargets
	if len(targets) != 1 || targets[0].Timeout != 2*time.Second {
		t.Errorf("health targets not loaded: %+v", targets)
	}
	if !cfg.Orchestrator.Parallel || cfg.Orchestrator.Glossary["notebook"] != "नोटबुक" {
		t.Errorf("orchestrator not loaded: %+v", cfg.Orchestrator)
	}
	if cfg.SummaryPath != "out/summary.json" {
		t.Errorf("expected summary path, got %s", cfg.SummaryPath)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvStoreDriver, "sqlite")
	t.Setenv(EnvDB, "env.db")
	t.Setenv(EnvSeed, "99")
	t.Setenv(EnvMetricsTextfile, "readiness.prom")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store.Driver != "sqlite" || cfg.Store.DBPath != "env.db" {
		t.Errorf("env store overrides not applied: %+v", cfg.Store)
	}
	if cfg.Producers.Seed != 99 {
		t.Errorf("expected seed 99, got %d", cfg.Producers.Seed)
	}
	if cfg.MetricsTextfile != "readiness.prom" {
		t.Errorf("expected metrics textfile, got %s", cfg.MetricsTextfile)
	}
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	t.Setenv(EnvConfig, writeConfig(t, "producers:\n  seed: 3\n"))
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Producers.Seed != 3 {
		t.Errorf("expected seed 3, got %d", cfg.Producers.Seed)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(writeConfig(t, "store: [not, a, map]")); err == nil {
		t.Error("expected error for malformed YAML")
	}
	if _, err := Load(writeConfig(t, "aggregate:\n  weights:\n    audit: 0.9\n")); err == nil {
		t.Error("expected validation error for weights")
	}

	t.Setenv(EnvSeed, "not-a-number")
	if _, err := Load(""); err == nil {
		t.Error("expected error for bad seed")
	}
}

func TestSaveToFile_RoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Producers.Seed = 11
	cfg.Orchestrator.Parallel = true
	path := filepath.Join(t.TempDir(), "nested", "readiness.yaml")
	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Producers.Seed != 11 || !loaded.Orchestrator.Parallel {
		t.Errorf("round trip lost values: seed=%d parallel=%v", loaded.Producers.Seed, loaded.Orchestrator.Parallel)
	}
	if loaded.Producers.VirtualUser.LatencyMs != cfg.Producers.VirtualUser.LatencyMs {
		t.Errorf("latency range lost: %v", loaded.Producers.VirtualUser.LatencyMs)
	}
}
