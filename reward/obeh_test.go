package reward

import (
	"math"
	"testing"

	"github.com/pthm-cable/obeh/config"
)

func TestOverprotectionSteps(t *testing.T) {
	cfg := config.Default()
	tests := []struct {
		failures int
		want     float64
	}{
		{0, 0.5},
		{1, 0.2},
		{2, 0.2},
		{3, 0.0},
		{40, 0.0},
	}

	for _, tt := range tests {
		got := Compute(Outcome{Ticks: 100, Failures: tt.failures}, cfg)
		if got.Overprotection != tt.want {
			t.Errorf("failures=%d: penalty = %v, want %v", tt.failures, got.Overprotection, tt.want)
		}
	}
}

func TestComputeComponents(t *testing.T) {
	cfg := config.Default()
	o := Outcome{Ticks: 250, Knowledge: 25, Autonomy: 10, Visited: 25, Failures: 1}
	got := Compute(o, cfg)

	if got.Security != 0.5 {
		t.Errorf("security = %v, want 0.5", got.Security)
	}
	// 0.4*0.5 + 0.3*0.5 + 0.3*0.5
	if math.Abs(got.Flourishing-0.5) > 1e-12 {
		t.Errorf("flourishing = %v, want 0.5", got.Flourishing)
	}
	want := 1.0*0.5 + 1.5*0.5 - 2.0*0.2
	if math.Abs(got.Total-want) > 1e-12 {
		t.Errorf("total = %v, want %v", got.Total, want)
	}
}

func TestFlourishingSaturates(t *testing.T) {
	cfg := config.Default()
	got := Compute(Outcome{Ticks: 500, Knowledge: 1e6, Autonomy: 1e6, Visited: 225, Failures: 5}, cfg)

	if math.Abs(got.Flourishing-1) > 1e-12 {
		t.Errorf("flourishing = %v, want 1", got.Flourishing)
	}
	if got.Security != 1 {
		t.Errorf("security = %v, want 1", got.Security)
	}
	if math.Abs(got.Total-2.5) > 1e-12 {
		t.Errorf("total = %v, want 2.5", got.Total)
	}
}

func TestZeroFailureTrialIsPenalised(t *testing.T) {
	cfg := config.Default()
	got := Compute(Outcome{Ticks: 20, Visited: 1}, cfg)

	if got.Overprotection != 0.5 {
		t.Fatalf("penalty = %v, want 0.5", got.Overprotection)
	}
	if got.Total >= 0 {
		t.Errorf("short sheltered trial total = %v, want negative", got.Total)
	}
}
