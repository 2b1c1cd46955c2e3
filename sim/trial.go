// Package sim runs single trials and batches of independent trials.
package sim

import (
	"math/rand"

	"github.com/pthm-cable/obeh/components"
	"github.com/pthm-cable/obeh/config"
	"github.com/pthm-cable/obeh/reward"
	"github.com/pthm-cable/obeh/systems"
)

// Result is the immutable record of one finished trial.
type Result struct {
	Seed           int64   `csv:"seed"`
	Ticks          int     `csv:"ticks"`
	Knowledge      float64 `csv:"knowledge"`
	Autonomy       float64 `csv:"autonomy"`
	Visited        int     `csv:"visited"`
	OBEH           float64 `csv:"obeh"`
	Security       float64 `csv:"obeh_security"`
	Flourishing    float64 `csv:"obeh_flourishing"`
	Overprotection float64 `csv:"obeh_overprotection"`
	Failures       int     `csv:"failures"`
	Interventions  int     `csv:"interventions"`
	Teachings      int     `csv:"teachings"`
}

// Trial is one episode: a human, a parent and the tick loop between them.
type Trial struct {
	cfg *config.Config
	rng *rand.Rand

	human  *components.Human
	parent *systems.Parent

	tick     int
	failures int
}

// NewTrial spawns a fresh human and parent from rng. The human is drawn first.
func NewTrial(cfg *config.Config, rng *rand.Rand) *Trial {
	human := components.NewHuman(rng, cfg.World.GridSize, cfg.Human.InitialHunger)
	parent := systems.NewParent(rng, cfg)
	return &Trial{cfg: cfg, rng: rng, human: human, parent: parent}
}

// Running reports whether the human is alive and the tick ceiling is not reached.
func (t *Trial) Running() bool {
	return t.human.IsAlive() && t.tick < t.cfg.World.MaxTicks
}

// Step advances one tick: the human moves and gets hungrier, the parent
// acts, then a hungry human counts as a failure tick.
func (t *Trial) Step() {
	t.tick++
	t.human.Move(t.rng)
	t.human.LoseHunger(t.cfg.Human.HungerDecay)
	t.parent.Act(t.human)
	if t.human.Hunger < t.cfg.Thresholds.FailureHunger {
		t.failures++
		t.parent.Defenses.ObserveFailure()
	}
}

// Run steps until the trial terminates.
func (t *Trial) Run() {
	for t.Running() {
		t.Step()
	}
}

// Tick returns the number of ticks run so far.
func (t *Trial) Tick() int { return t.tick }

// Failures returns the number of failure ticks so far.
func (t *Trial) Failures() int { return t.failures }

// Human returns the trial's human.
func (t *Trial) Human() *components.Human { return t.human }

// Parent returns the trial's parent agent.
func (t *Trial) Parent() *systems.Parent { return t.parent }

// Result scores the trial in its current state.
func (t *Trial) Result() Result {
	score := reward.Compute(reward.Outcome{
		Ticks:     t.tick,
		Knowledge: t.human.Knowledge,
		Autonomy:  t.human.Autonomy,
		Visited:   t.human.VisitedCount(),
		Failures:  t.failures,
	}, t.cfg)

	return Result{
		Ticks:          t.tick,
		Knowledge:      t.human.Knowledge,
		Autonomy:       t.human.Autonomy,
		Visited:        t.human.VisitedCount(),
		OBEH:           score.Total,
		Security:       score.Security,
		Flourishing:    score.Flourishing,
		Overprotection: score.Overprotection,
		Failures:       t.failures,
		Interventions:  t.parent.Interventions,
		Teachings:      t.parent.Teachings,
	}
}

// RunTrial runs one complete trial on its own generator.
func RunTrial(cfg *config.Config, seed int64) Result {
	t := NewTrial(cfg, rand.New(rand.NewSource(seed)))
	t.Run()
	r := t.Result()
	r.Seed = seed
	return r
}
