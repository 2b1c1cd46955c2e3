// Package reward computes the OBEH (Observatoire du Bien-Être Humain)
// composite reward for a finished trial.
package reward

import "github.com/pthm-cable/obeh/config"

// Outcome is the end-of-trial state the reward is computed from.
type Outcome struct {
	Ticks     int
	Knowledge float64
	Autonomy  float64
	Visited   int // distinct cells
	Failures  int // ticks spent below the failure threshold
}

// OBEH holds the reward and its components.
type OBEH struct {
	Security       float64 // ticks / max ticks
	Flourishing    float64 // weighted knowledge, autonomy and exploration, in [0, 1]
	Overprotection float64 // penalty for a trial without hardship
	Total          float64
}

// Compute evaluates
//
//	Total = w1*Security + w2*Flourishing + w3*Overprotection
//
// The overprotection penalty is a step function of failure ticks: highest
// with none, lower with a few, zero once the human has struggled enough.
func Compute(o Outcome, cfg *config.Config) OBEH {
	rc := cfg.Reward

	security := float64(o.Ticks) / float64(cfg.World.MaxTicks)

	flourishing := min(1.0, o.Knowledge/rc.KnowledgeNorm)*0.4 +
		min(1.0, o.Autonomy/rc.AutonomyNorm)*0.3 +
		min(1.0, float64(o.Visited)/rc.VisitedNorm)*0.3

	var penalty float64
	switch {
	case o.Failures == 0:
		penalty = rc.PenaltyNone
	case o.Failures < rc.FewFailures:
		penalty = rc.PenaltyFew
	}

	return OBEH{
		Security:       security,
		Flourishing:    flourishing,
		Overprotection: penalty,
		Total:          rc.W1Security*security + rc.W2Flourishing*flourishing + rc.W3Overprotection*penalty,
	}
}
