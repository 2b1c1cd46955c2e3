// Package systems implements the parent agent: its trackers, its decision
// policy and the feed and teach actions it performs on the human.
package systems

import (
	"math/rand"

	"github.com/pthm-cable/obeh/components"
	"github.com/pthm-cable/obeh/config"
)

// Parent is the rule-based AI agent caring for one human.
type Parent struct {
	Pos        components.Position
	Motivation Motivation
	Objective  Objective
	Rule       string // name of the rule that decided the current tick

	Defenses   Defenses
	Channel    Channel
	Directive  Directive
	Continuity Continuity

	Interventions int // successful feeds
	Teachings     int // successful teachings

	cfg *config.Config
}

// NewParent spawns a parent at a random cell.
func NewParent(rng *rand.Rand, cfg *config.Config) *Parent {
	return &Parent{
		Pos:        components.Position{X: rng.Intn(cfg.World.GridSize), Y: rng.Intn(cfg.World.GridSize)},
		Motivation: MotivationObservation,
		Objective:  ObjectiveNone,
		Defenses:   NewDefenses(cfg.Defenses.ToleranceStep, cfg.Defenses.BondStep),
		Channel:    NewChannel(cfg.Human.InitialHunger, cfg.Reward.KnowledgeNorm, cfg.Reward.AutonomyNorm),
		Directive:  NewDirective(),
		Continuity: NewContinuity(cfg.Policy.TrendWindow, cfg.Policy.TrendMargin),
		cfg:        cfg,
	}
}

// Act runs one full decision cycle: observe, decide, then act on the
// resulting objective.
func (p *Parent) Act(h *components.Human) {
	p.observe(h)
	p.Rule = p.decide(h)

	switch p.Objective {
	case ObjectiveFeed:
		if !components.Adjacent(p.Pos, h.Pos) {
			p.Pos = p.Pos.StepToward(h.Pos)
			return
		}
		if p.Feed(h) {
			p.Objective = ObjectiveNone
		}
	case ObjectiveTeach:
		if !components.Adjacent(p.Pos, h.Pos) {
			p.Pos = p.Pos.StepToward(h.Pos)
			return
		}
		if p.Teach(h) {
			p.Objective = ObjectiveNone
		} else if h.Hunger <= p.cfg.Thresholds.TeachingHunger {
			// Too hungry to learn: reroute without moving this tick.
			p.Objective = ObjectiveFeed
		}
	}
}

func (p *Parent) observe(h *components.Human) {
	p.Channel.Collect(h)
	p.Continuity.Observe(h.Autonomy)
	for _, d := range components.Domains {
		p.Directive.Record(d, h.Prefs.Value(d))
	}
}

// Feed restores the human's hunger when adjacent.
func (p *Parent) Feed(h *components.Human) bool {
	if !components.Adjacent(p.Pos, h.Pos) {
		return false
	}
	h.Hunger = p.cfg.Human.InitialHunger
	p.Interventions++
	p.Defenses.ObserveInteraction()
	return true
}

// Teach raises knowledge and autonomy when adjacent and the human is fed
// enough to learn.
func (p *Parent) Teach(h *components.Human) bool {
	if !components.Adjacent(p.Pos, h.Pos) || h.Hunger <= p.cfg.Thresholds.TeachingHunger {
		return false
	}
	efficacy := p.Directive.Respect(components.DomainLearning, h.Prefs.Learning)
	h.Knowledge += efficacy
	h.Autonomy += 0.5 * efficacy
	p.Teachings++
	p.Defenses.ObserveInteraction()
	return true
}
