// Package main provides the readiness binary: it runs the launch-readiness
// producers, assesses their records and prints both launch verdicts.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/config"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/replay"
	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/store"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "readiness"
)

// #region main
func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
// #endregion main

// #region root
func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Launch-readiness assessment for the PREET English course",
		Long: `readiness runs the content audit, learner simulation, robustness suite and
deployment validation, persists one record per producer, then assesses the
records twice: a weighted composite with blockers, and an independent
4-of-5 launch vote. Both verdicts are reported side by side.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path (YAML, default $READINESS_CONFIG)")

	cmd.AddCommand(
		runCmd(&configPath),
		produceCmd(&configPath),
		dashboardCmd(&configPath),
		replayCmd(&configPath),
		exportFixtureCmd(&configPath),
		configCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
			},
		},
	)
	return cmd
}
// #endregion root

// #region run
func runCmd(configPath *string) *cobra.Command {
	var parallel, asJSON bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every phase, then assess the records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath, func(c *config.Config) {
				if cmd.Flags().Changed("parallel") {
					c.Orchestrator.Parallel = parallel
				}
			})
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			rep := a.orch.Run(ctx)
			return a.publish(cmd.OutOrStdout(), rep, asJSON)
		},
	}
	cmd.Flags().BoolVar(&parallel, "parallel", false, "run the post-enrichment producers concurrently")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the JSON summary instead of the report")
	return cmd
}
// #endregion run

// #region produce
func produceCmd(configPath *string) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "produce <" + producerNames() + ">",
		Short: "Run one producer and persist its record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := record.ProducerID(args[0])
			if !id.Valid() {
				return fmt.Errorf("unknown producer %q, want one of %s", args[0], producerNames())
			}
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			rec, err := a.orch.ProduceOne(ctx, id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(rec, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal record: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			fmt.Fprintf(out, "%s: %s (readiness %.1f, %d issue(s))\n",
				rec.ProducerID, rec.ProducerVerdict, rec.Value(record.KeyReadinessScore), len(rec.Issues))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the record as JSON")
	return cmd
}

func producerNames() string {
	names := make([]string, len(record.Producers))
	for i, id := range record.Producers {
		names[i] = string(id)
	}
	return strings.Join(names, "|")
}
// #endregion produce

// #region dashboard
func dashboardCmd(configPath *string) *cobra.Command {
	var watch, asJSON bool
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Assess the persisted records without running producers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			if err := a.publish(out, a.orch.Assess(), asJSON); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			fs, ok := a.store.(*store.FileStore)
			if !ok {
				return fmt.Errorf("--watch needs the file store, configured driver is %q", a.cfg.Store.Driver)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return store.Watch(ctx, fs.Dir(), store.DefaultDebounce, func() {
				if err := a.publish(out, a.orch.Assess(), asJSON); err != nil {
					log.Printf("[WATCH] publish: %v", err)
				}
			})
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "re-assess whenever a record file changes")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the JSON summary instead of the report")
	return cmd
}
// #endregion dashboard

// #region replay
func replayCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <fixture.json>",
		Short: "Assess a recorded fixture offline and compare with its expectations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			f, err := replay.LoadFixture(args[0])
			if err != nil {
				return err
			}
			res := replay.Replay(*f, cfg.Aggregate, cfg.Producers)
			mismatches := replay.Check(*f, res)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", f.Description)
			fmt.Fprintf(out, "  aggregator: %.2f %s ready=%v blockers=%d\n",
				res.Assessment.WeightedScore, res.Assessment.Grade, res.Assessment.Ready, len(res.Assessment.Blockers))
			fmt.Fprintf(out, "  launch vote: %d/%d launchReady=%v mean=%.2f %s\n",
				res.Vote.Passed, len(res.Vote.Criteria), res.Vote.LaunchReady, res.MeanScore, res.MeanGrade)
			for _, m := range mismatches {
				fmt.Fprintf(out, "  DIFF %s\n", m)
			}
			if len(mismatches) > 0 {
				return fmt.Errorf("%d mismatch(es) in %s", len(mismatches), args[0])
			}
			fmt.Fprintln(out, "  OK")
			return nil
		},
	}
}
// #endregion replay

// #region export-fixture
func exportFixtureCmd(configPath *string) *cobra.Command {
	var outPath, description string
	cmd := &cobra.Command{
		Use:   "export-fixture",
		Short: "Write the persisted records as a replay fixture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			records, missing := store.LoadAll(a.store)
			if len(records) == 0 {
				return fmt.Errorf("no records to export")
			}
			f := replay.Export(description, records, a.cfg.Aggregate)
			if err := replay.WriteFixture(outPath, f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d record(s) to %s (missing: %v)\n", len(records), outPath, missing)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "fixture.json", "fixture output path")
	cmd.Flags().StringVar(&description, "description", "exported from the record store", "fixture description")
	return cmd
}
// #endregion export-fixture

// #region config
func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the readiness configuration",
	}

	var outPath string
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(outPath); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", outPath)
			}
			if err := config.DefaultConfig().SaveToFile(outPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote default config to %s\n", outPath)
			return nil
		},
	}
	initCmd.Flags().StringVarP(&outPath, "out", "o", "readiness.yaml", "config output path")
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}
// #endregion config
