package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/obeh/components"
)

func TestDefensesSaturate(t *testing.T) {
	d := NewDefenses(0.1, 0.05)
	for i := 0; i < 20; i++ {
		d.ObserveFailure()
	}
	for i := 0; i < 30; i++ {
		d.ObserveInteraction()
	}

	if d.FailuresObserved != 20 || d.Interactions != 30 {
		t.Errorf("counts = %d/%d, want 20/30", d.FailuresObserved, d.Interactions)
	}
	if d.FailureTolerance != 1.0 {
		t.Errorf("tolerance = %v, want 1.0", d.FailureTolerance)
	}
	if d.BondStrength != 1.0 || !d.BondEstablished {
		t.Errorf("bond = %v established=%v, want 1.0 true", d.BondStrength, d.BondEstablished)
	}
}

func TestDefensesIncrements(t *testing.T) {
	d := NewDefenses(0.1, 0.05)
	d.ObserveFailure()
	d.ObserveInteraction()
	if math.Abs(d.FailureTolerance-0.1) > 1e-12 || math.Abs(d.BondStrength-0.05) > 1e-12 {
		t.Errorf("after one event tolerance %v bond %v", d.FailureTolerance, d.BondStrength)
	}
}

func TestContinuityTrend(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Trend
	}{
		{"too few", []float64{0, 0, 0, 5, 5, 5, 5, 5, 5}, TrendStable},
		{"growth", []float64{0, 0, 0, 0, 0, 1, 1, 1, 1, 1}, TrendGrowth},
		{"regression", []float64{2, 2, 2, 2, 2, 1, 1, 1, 1, 1}, TrendRegression},
		{"within margin", []float64{1, 1, 1, 1, 1, 1.5, 1.5, 1.5, 1.5, 1.5}, TrendStable},
		{"only last ten count", []float64{100, 100, 3, 3, 3, 3, 3, 4, 4, 4, 4, 4}, TrendGrowth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContinuity(5, 0.5)
			for _, v := range tt.values {
				c.Observe(v)
			}
			if got := c.Trend(); got != tt.want {
				t.Errorf("Trend() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChannelHappiness(t *testing.T) {
	c := NewChannel(10, 50, 20)
	tests := []struct {
		name                string
		hunger, know, auton float64
		want                float64
	}{
		{"blend", 10, 25, 10, 0.65},
		{"capped", 10, 500, 500, 1.0},
		{"starving", -1, 0, 0, -0.03},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &components.Human{Hunger: tt.hunger, Knowledge: tt.know, Autonomy: tt.auton}
			if got := c.Happiness(h); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Happiness = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChannelSamplesAreACopy(t *testing.T) {
	c := NewChannel(10, 50, 20)
	c.Collect(&components.Human{Hunger: 10})
	s := c.Samples()
	s[0] = 99
	if c.Samples()[0] == 99 {
		t.Error("Samples exposed internal storage")
	}
}

func TestDirectiveRespect(t *testing.T) {
	d := NewDirective()
	if got := d.Respect(components.DomainLearning, 0.4); got != 0.4 {
		t.Errorf("unregistered Respect = %v, want 0.4", got)
	}
	d.Record(components.DomainLearning, 1)
	if got := d.Respect(components.DomainLearning, 0.4); got != 0.4 {
		t.Errorf("Respect with preference 1 = %v, want 0.4", got)
	}
	d.Record(components.DomainLearning, 0)
	if got := d.Respect(components.DomainLearning, 0.4); got != 0.2 {
		t.Errorf("Respect with preference 0 = %v, want 0.2", got)
	}
}
