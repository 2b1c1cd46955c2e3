package systems

import "github.com/pthm-cable/obeh/components"

// rule sets the parent's motivation and objective and reports whether it
// matched. Rules are evaluated in order and the first match wins.
type rule struct {
	name  string
	apply func(p *Parent, h *components.Human) bool
}

// Rule names, in evaluation order.
const (
	RuleEmergency  = "emergency"
	RuleDirective  = "directive"
	RuleContinuity = "continuity"
	RuleStability  = "stability"
	RuleOBEH       = "obeh"
)

var policy = []rule{
	{RuleEmergency, emergencyRule},
	{RuleDirective, directiveRule},
	{RuleContinuity, continuityRule},
	{RuleStability, stabilityRule},
	{RuleOBEH, obehRule},
}

func (p *Parent) decide(h *components.Human) string {
	for _, r := range policy {
		if r.apply(p, h) {
			return r.name
		}
	}
	return ""
}

func emergencyRule(p *Parent, h *components.Human) bool {
	if h.Hunger > p.cfg.Thresholds.Urgency {
		return false
	}
	p.Motivation = MotivationProtection
	p.Objective = ObjectiveFeed
	return true
}

func directiveRule(p *Parent, h *components.Human) bool {
	if h.Prefs.Independence <= p.cfg.Policy.IndependenceCutoff {
		return false
	}
	p.Motivation = MotivationRespect
	p.Objective = ObjectiveObserve
	return true
}

func continuityRule(p *Parent, h *components.Human) bool {
	if p.Continuity.Trend() != TrendGrowth || h.Autonomy <= p.cfg.Policy.ContinuityAutonomy {
		return false
	}
	p.Motivation = MotivationObservation
	p.Objective = ObjectiveObserve
	return true
}

func stabilityRule(p *Parent, _ *components.Human) bool {
	return p.Objective.committed()
}

// obehRule weighs the security gain of feeding against the flourishing gain
// of teaching. Always matches.
func obehRule(p *Parent, h *components.Human) bool {
	security, flourishing := p.Scores(h)
	if security > flourishing {
		p.Motivation = MotivationProtection
		p.Objective = ObjectiveFeed
	} else {
		p.Motivation = MotivationEducation
		p.Objective = ObjectiveTeach
	}
	return true
}

// Scores returns the security and flourishing scores used by the default rule.
func (p *Parent) Scores(h *components.Human) (security, flourishing float64) {
	pc := p.cfg.Policy
	dist := float64(max(1, components.Manhattan(p.Pos, h.Pos)))
	security = (1 / max(1, h.Hunger)) * pc.SecurityScale * p.cfg.Reward.W1Security
	flourishing = (1 / dist) * pc.FlourishingScale * p.cfg.Reward.W2Flourishing * (0.5 + 0.5*h.Prefs.Learning)
	return security, flourishing
}
