package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/obeh/config"
	"github.com/pthm-cable/obeh/sim"
	"github.com/pthm-cable/obeh/telemetry"
)

// FitnessEvaluator runs a fixed-seed batch per parameter vector and scores it.
type FitnessEvaluator struct {
	params     *ParamVector
	trials     int
	seed       int64
	workers    int
	baseConfig *config.Config

	mu          sync.Mutex
	bestFitness float64
	bestStats   telemetry.BatchStats
	lastStats   telemetry.BatchStats
}

// NewFitnessEvaluator creates a new evaluator. Every evaluation replays the
// same seeds so parameter vectors are compared on identical humans.
func NewFitnessEvaluator(params *ParamVector, trials int, seed int64, workers int, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		trials:      trials,
		seed:        seed,
		workers:     workers,
		baseConfig:  baseCfg,
		bestFitness: math.Inf(1),
	}
}

// LastStats returns the batch statistics from the most recent evaluation.
func (fe *FitnessEvaluator) LastStats() telemetry.BatchStats {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastStats
}

// BestStats returns the batch statistics of the best evaluation so far.
func (fe *FitnessEvaluator) BestStats() telemetry.BatchStats {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.bestStats
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.baseConfig.Clone()
	fe.params.ApplyToConfig(cfg, x)

	results := sim.RunBatch(cfg, sim.BatchOptions{
		Trials:  fe.trials,
		Seed:    fe.seed,
		Workers: fe.workers,
	})
	stats := telemetry.Aggregate(results)
	fitness := computeFitness(stats, cfg.Validation)

	fe.mu.Lock()
	fe.lastStats = stats
	if fitness < fe.bestFitness {
		fe.bestFitness = fitness
		fe.bestStats = stats
	}
	fe.mu.Unlock()

	return fitness
}

// Penalty per failed validation check. Large enough that a configuration
// failing a check never beats one passing all of them.
const validationPenalty = 10.0

// computeFitness is negative mean OBEH plus a penalty per failed check.
func computeFitness(stats telemetry.BatchStats, vc config.ValidationConfig) float64 {
	fitness := -stats.OBEH.Mean
	for _, c := range telemetry.Validate(stats, vc) {
		if !c.Passed {
			fitness += validationPenalty
		}
	}
	return fitness
}
