package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/aggregate"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/config"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/content"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/metrics"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/orchestrator"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/producer"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/report"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/store"
)

// #region app

// app holds everything a subcommand needs, built once from the config.
type app struct {
	cfg     *config.Config
	store   store.RecordStore
	orch    *orchestrator.Orchestrator
	metrics *metrics.Collector
}

// newApp loads the config, applies overrides from flags, then opens the
// catalog and the store.
func newApp(configPath string, overrides ...func(*config.Config)) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	for _, o := range overrides {
		o(cfg)
	}
	cat, err := content.Load(cfg.Content)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	st, err := store.Open(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	col := metrics.NewCollector()
	orch := orchestrator.NewOrchestrator(cfg.Orchestrator, producer.NewFactory(cfg.Producers),
		st, cat, aggregate.NewAggregator(cfg.Aggregate)).WithMetrics(col)
	if s, ok := st.(*store.SQLiteStore); ok {
		orch.WithAssessmentLog(s.DB())
	}
	log.Printf("[ORCH] store=%s lessons=%d seed=%d", cfg.Store.Driver, len(cat.Lessons), cfg.Producers.Seed)
	return &app{cfg: cfg, store: st, orch: orch, metrics: col}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

// publish prints rep and writes the summary and metrics files when configured.
func (a *app) publish(w io.Writer, rep orchestrator.Report, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(orchestrator.NewSummary(rep), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal summary: %w", err)
		}
		if _, err := fmt.Fprintln(w, string(data)); err != nil {
			return err
		}
	} else if err := report.Render(w, rep); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	if a.cfg.SummaryPath != "" {
		if err := orchestrator.WriteSummary(a.cfg.SummaryPath, rep); err != nil {
			return err
		}
	}
	if a.cfg.MetricsTextfile != "" {
		if err := a.metrics.WriteTextfile(a.cfg.MetricsTextfile); err != nil {
			return err
		}
	}
	return nil
}

// #endregion app
