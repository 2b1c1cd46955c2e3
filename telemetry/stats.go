// Package telemetry aggregates batch results and reports them.
package telemetry

import (
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/obeh/sim"
)

// Summary describes the distribution of one metric across trials.
type Summary struct {
	Mean   float64
	Median float64
	StdDev float64 // population standard deviation
	P2_5   float64
	P97_5  float64
}

// Percentile returns sorted[int(len*p)], clamped to the last element.
// No interpolation. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	idx := int(float64(n) * p)
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	return sorted[idx]
}

// Median returns the upper median sorted[len/2]. Returns 0 if slice is empty.
func Median(sorted []float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)/2]
}

// Describe summarises values. The input is not modified.
func Describe(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	mean, std := stat.PopMeanStdDev(values, nil)

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	return Summary{
		Mean:   mean,
		Median: Median(sorted),
		StdDev: std,
		P2_5:   Percentile(sorted, 0.025),
		P97_5:  Percentile(sorted, 0.975),
	}
}

// BatchStats holds aggregate statistics for a batch of trials.
type BatchStats struct {
	Trials int

	Ticks     Summary
	Knowledge Summary
	Autonomy  Summary
	OBEH      Summary

	MeanFailures      float64
	FailureFraction   float64 // trials with at least one failure tick, in [0, 1]
	MeanInterventions float64
	MeanTeachings     float64
}

// FailurePercent returns FailureFraction as a percentage.
func (s BatchStats) FailurePercent() float64 {
	return s.FailureFraction * 100
}

// Aggregate computes batch statistics from trial results.
func Aggregate(results []sim.Result) BatchStats {
	n := len(results)
	if n == 0 {
		return BatchStats{}
	}

	ticks := make([]float64, n)
	knowledge := make([]float64, n)
	autonomy := make([]float64, n)
	obeh := make([]float64, n)
	failures := make([]float64, n)
	interventions := make([]float64, n)
	teachings := make([]float64, n)
	for i, r := range results {
		ticks[i] = float64(r.Ticks)
		knowledge[i] = r.Knowledge
		autonomy[i] = r.Autonomy
		obeh[i] = r.OBEH
		failures[i] = float64(r.Failures)
		interventions[i] = float64(r.Interventions)
		teachings[i] = float64(r.Teachings)
	}

	withFailures := floats.Count(func(v float64) bool { return v > 0 }, failures)

	return BatchStats{
		Trials:            n,
		Ticks:             Describe(ticks),
		Knowledge:         Describe(knowledge),
		Autonomy:          Describe(autonomy),
		OBEH:              Describe(obeh),
		MeanFailures:      stat.Mean(failures, nil),
		FailureFraction:   float64(withFailures) / float64(n),
		MeanInterventions: stat.Mean(interventions, nil),
		MeanTeachings:     stat.Mean(teachings, nil),
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s BatchStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("trials", s.Trials),
		slog.Float64("ticks_mean", s.Ticks.Mean),
		slog.Float64("ticks_median", s.Ticks.Median),
		slog.Float64("ticks_std", s.Ticks.StdDev),
		slog.Float64("knowledge_mean", s.Knowledge.Mean),
		slog.Float64("autonomy_mean", s.Autonomy.Mean),
		slog.Float64("obeh_mean", s.OBEH.Mean),
		slog.Float64("obeh_p2_5", s.OBEH.P2_5),
		slog.Float64("obeh_p97_5", s.OBEH.P97_5),
		slog.Float64("failure_fraction", s.FailureFraction),
		slog.Float64("failures_mean", s.MeanFailures),
	)
}
