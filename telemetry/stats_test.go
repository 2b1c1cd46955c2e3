package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/obeh/config"
	"github.com/pthm-cable/obeh/sim"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.975, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100 clamps", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"no interpolation", []float64{1, 2, 3, 4}, 0.5, 3.0},
		{"p2.5 of 40", seq(40), 0.025, 1},
		{"p97.5 of 40", seq(40), 0.975, 39},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percentile(tt.sorted, tt.p); got != tt.want {
				t.Errorf("Percentile(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPercentileIndicesAt10000(t *testing.T) {
	sorted := seq(10000)
	if got := Percentile(sorted, 0.025); got != 250 {
		t.Errorf("P2.5 = %v, want sorted[250]", got)
	}
	if got := Percentile(sorted, 0.975); got != 9750 {
		t.Errorf("P97.5 = %v, want sorted[9750]", got)
	}
}

func TestMedianIsUpperMiddle(t *testing.T) {
	if got := Median([]float64{1, 2, 3, 4}); got != 3 {
		t.Errorf("even median = %v, want 3", got)
	}
	if got := Median([]float64{1, 2, 3}); got != 2 {
		t.Errorf("odd median = %v, want 2", got)
	}
	if got := Median(nil); got != 0 {
		t.Errorf("empty median = %v, want 0", got)
	}
}

func TestDescribeConstant(t *testing.T) {
	values := make([]float64, 10000)
	for i := range values {
		values[i] = 7
	}
	s := Describe(values)
	if s.Mean != 7 || s.Median != 7 || s.P2_5 != 7 || s.P97_5 != 7 {
		t.Errorf("constant summary = %+v, want all 7", s)
	}
	if s.StdDev != 0 {
		t.Errorf("std = %v, want 0", s.StdDev)
	}
}

func TestDescribePopulationStdDev(t *testing.T) {
	s := Describe([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if math.Abs(s.Mean-5) > 1e-12 {
		t.Errorf("mean = %v, want 5", s.Mean)
	}
	if math.Abs(s.StdDev-2) > 1e-12 {
		t.Errorf("population std = %v, want 2", s.StdDev)
	}
}

func TestDescribeDoesNotSortInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Describe(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input modified: %v", values)
	}
}

func TestAggregateSingleTrial(t *testing.T) {
	cfg := config.Default()
	r := sim.RunTrial(cfg, 11)
	s := Aggregate([]sim.Result{r})

	check := func(name string, got Summary, want float64) {
		t.Helper()
		if got.Mean != want || got.Median != want || got.P2_5 != want || got.P97_5 != want || got.StdDev != 0 {
			t.Errorf("%s summary = %+v, want all %v and std 0", name, got, want)
		}
	}
	check("ticks", s.Ticks, float64(r.Ticks))
	check("knowledge", s.Knowledge, r.Knowledge)
	check("autonomy", s.Autonomy, r.Autonomy)
	check("obeh", s.OBEH, r.OBEH)

	wantFraction := 0.0
	if r.Failures > 0 {
		wantFraction = 1
	}
	if s.FailureFraction != wantFraction {
		t.Errorf("failure fraction = %v, want %v", s.FailureFraction, wantFraction)
	}
	if s.Trials != 1 {
		t.Errorf("trials = %d, want 1", s.Trials)
	}
}

func TestAggregateFailureFraction(t *testing.T) {
	results := []sim.Result{
		{Ticks: 100, Failures: 0},
		{Ticks: 200, Failures: 3},
		{Ticks: 300, Failures: 1},
		{Ticks: 400, Failures: 0},
	}
	s := Aggregate(results)
	if s.FailureFraction != 0.5 || s.FailurePercent() != 50 {
		t.Errorf("failure fraction = %v, want 0.5", s.FailureFraction)
	}
	if s.MeanFailures != 1 {
		t.Errorf("mean failures = %v, want 1", s.MeanFailures)
	}
	if s.Ticks.Mean != 250 || s.Ticks.Median != 300 {
		t.Errorf("ticks = %+v", s.Ticks)
	}
}

func TestAggregateEmpty(t *testing.T) {
	if s := Aggregate(nil); s.Trials != 0 || s.Ticks.Mean != 0 {
		t.Errorf("empty aggregate = %+v", s)
	}
}

func TestValidate(t *testing.T) {
	vc := config.Default().Validation
	good := BatchStats{
		Ticks:           Summary{Mean: 150},
		Knowledge:       Summary{Mean: 6},
		OBEH:            Summary{Mean: 0.1},
		FailureFraction: 0.4,
	}
	checks := Validate(good, vc)
	if len(checks) != 4 || !AllPassed(checks) {
		t.Fatalf("expected four passing checks, got %+v", checks)
	}

	bad := BatchStats{
		Ticks:           Summary{Mean: 100},
		Knowledge:       Summary{Mean: 5},
		OBEH:            Summary{Mean: 0},
		FailureFraction: 0.3,
	}
	for _, c := range Validate(bad, vc) {
		if c.Passed {
			t.Errorf("check %s passed at its threshold", c.Name)
		}
		if c.Message() != c.Fail {
			t.Errorf("check %s message = %q, want fail message", c.Name, c.Message())
		}
	}
}

func seq(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}
