package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/pthm-cable/obeh/config"
	"github.com/pthm-cable/obeh/plots"
	"github.com/pthm-cable/obeh/sim"
	"github.com/pthm-cable/obeh/telemetry"
)

// Output formats for stdout.
const (
	formatText = "text"
	formatCSV  = "csv"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	trials := flag.Int("n", 0, "Number of trials to run (0 = use config)")
	seed := flag.Int64("seed", 0, "Base RNG seed, trial i uses seed+i (0 = time-based)")
	workers := flag.Int("workers", 0, "Concurrent trials (0 = use config)")
	plotPath := flag.String("plot", "simulation_results.png", "PNG output path (empty = no plot)")
	format := flag.String("format", formatText, "Stdout format: text report or csv per-trial table")

	flag.Parse()

	// Set up slog (JSON to stderr for structured logging; stdout carries the report)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if *format != formatText && *format != formatCSV {
		slog.Error("unknown output format", "format", *format)
		os.Exit(1)
	}

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	n := cfg.Batch.Trials
	if *trials > 0 {
		n = *trials
	}
	numWorkers := cfg.Workers()
	if *workers > 0 {
		numWorkers = *workers
	}

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	runID := uuid.NewString()
	logger = logger.With("run_id", runID)

	var report io.Writer = os.Stdout
	if *format == formatCSV {
		report = io.Discard
	}

	logger.Info("starting batch",
		"trials", n,
		"seed", rngSeed,
		"workers", numWorkers,
		"grid_size", cfg.World.GridSize,
		"max_ticks", cfg.World.MaxTicks,
	)
	telemetry.WriteBanner(report, n, runID)

	start := time.Now()
	results := sim.RunBatch(cfg, sim.BatchOptions{
		Trials:        n,
		Seed:          rngSeed,
		Workers:       numWorkers,
		ProgressEvery: cfg.Batch.ProgressEvery,
		OnProgress: func(p sim.Progress) {
			if *format == formatCSV {
				logger.Info("progress", "done", p.Done, "total", p.Total, "mean_ticks", p.MeanTicks, "mean_obeh", p.MeanOBEH)
				return
			}
			fmt.Fprintln(report, telemetry.FormatProgress(p))
		},
	})
	elapsed := time.Since(start)

	stats := telemetry.Aggregate(results)
	checks := telemetry.Validate(stats, cfg.Validation)
	telemetry.WriteReport(report, stats, checks, elapsed)
	logger.Info("batch complete", "elapsed", elapsed, "stats", stats, "validated", telemetry.AllPassed(checks))

	if *format == formatCSV {
		if err := telemetry.WriteResultsCSV(os.Stdout, results); err != nil {
			logger.Warn("results table not written", "error", err)
		}
	}

	if *plotPath == "" {
		return
	}
	if err := plots.Render(*plotPath, results, stats); err != nil {
		logger.Warn("plots not generated", "error", err)
		fmt.Fprintf(report, "(Plots not generated: %v)\n", err)
		return
	}
	logger.Info("plots saved", "path", *plotPath)
	fmt.Fprintf(report, "Plots saved to: %s\n", *plotPath)
}
