// Package config loads the readiness pipeline configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/aggregate"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/content"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/orchestrator"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/producer"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/store"
)

// Environment variables read by Load.
const (
	EnvConfig          = "READINESS_CONFIG"
	EnvStoreDriver     = "READINESS_STORE_DRIVER"
	EnvStoreDir        = "READINESS_STORE_DIR"
	EnvDB              = "READINESS_DB"
	EnvSeed            = "READINESS_SEED"
	EnvMetricsTextfile = "READINESS_METRICS_TEXTFILE"
)

// #region config

// Config is the complete pipeline configuration.
type Config struct {
	Content      content.Config      `yaml:"content"`
	Producers    producer.Config     `yaml:"producers"`
	Store        store.Config        `yaml:"store"`
	Aggregate    aggregate.Config    `yaml:"aggregate"`
	Orchestrator orchestrator.Config `yaml:"orchestrator"`

	// SummaryPath receives the consolidated JSON summary after each run.
	SummaryPath string `yaml:"summary_path"`
	// MetricsTextfile, when set, receives a Prometheus textfile after each run.
	MetricsTextfile string `yaml:"metrics_textfile"`
}

// DefaultConfig returns every package default.
func DefaultConfig() *Config {
	return &Config{
		Content:      content.DefaultConfig(),
		Producers:    producer.DefaultConfig(),
		Store:        store.DefaultConfig(),
		Aggregate:    aggregate.DefaultConfig(),
		Orchestrator: orchestrator.DefaultConfig(),
		SummaryPath:  filepath.Join("readiness-reports", "summary.json"),
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.Aggregate.Validate(); err != nil {
		return err
	}
	switch c.Store.Driver {
	case "file":
		if c.Store.Dir == "" {
			return fmt.Errorf("store.dir is required for the file driver")
		}
	case "sqlite":
		if c.Store.DBPath == "" {
			return fmt.Errorf("store.db is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("store.driver must be file or sqlite, got %q", c.Store.Driver)
	}
	if c.Producers.Workers < 1 {
		return fmt.Errorf("producers.workers must be at least 1")
	}
	for _, r := range []struct {
		name string
		v    float64
	}{
		{"virtual_user.pass_rate", c.Producers.VirtualUser.PassRate},
		{"virtual_user.error_rate", c.Producers.VirtualUser.ErrorRate},
		{"robustness.pass_rate", c.Producers.Robustness.PassRate},
		{"robustness.error_rate", c.Producers.Robustness.ErrorRate},
		{"deployment.pass_rate", c.Producers.Deployment.PassRate},
		{"deployment.error_rate", c.Producers.Deployment.ErrorRate},
	} {
		if r.v < 0 || r.v > 1 {
			return fmt.Errorf("producers.%s must be between 0 and 1", r.name)
		}
	}
	if c.Producers.Audit.MaxContentGaps < 0 {
		return fmt.Errorf("producers.audit.max_content_gaps must not be negative")
	}
	return nil
}

// #endregion config

// #region load

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path falls back to READINESS_CONFIG; when
// both are empty only defaults and environment apply.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes c as YAML, creating the parent directory.
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Store.Driver = envOr(EnvStoreDriver, c.Store.Driver)
	c.Store.Dir = envOr(EnvStoreDir, c.Store.Dir)
	c.Store.DBPath = envOr(EnvDB, c.Store.DBPath)
	c.MetricsTextfile = envOr(EnvMetricsTextfile, c.MetricsTextfile)
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvSeed, err)
		}
		c.Producers.Seed = seed
	}
	return nil
}

// #endregion load

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
// #endregion helpers
