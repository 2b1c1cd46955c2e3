package components

import "math/rand"

// Domain names a human preference.
type Domain string

const (
	DomainExploration  Domain = "exploration"
	DomainLearning     Domain = "learning"
	DomainIndependence Domain = "independence"
)

// Domains lists every preference domain in a stable order.
var Domains = [...]Domain{DomainExploration, DomainLearning, DomainIndependence}

// Preferences are drawn once per trial, each in [0, 1).
type Preferences struct {
	Exploration  float64 // Probability of moving on a given tick
	Learning     float64 // Base teaching efficacy
	Independence float64 // High values make the parent stand back
}

// Value returns the preference for d, or 0 for an unknown domain.
func (p Preferences) Value(d Domain) float64 {
	switch d {
	case DomainExploration:
		return p.Exploration
	case DomainLearning:
		return p.Learning
	case DomainIndependence:
		return p.Independence
	}
	return 0
}

// Human is the randomly wandering agent with survival needs.
type Human struct {
	Pos       Position
	Hunger    float64
	Knowledge float64
	Autonomy  float64
	Visited   map[Position]struct{}
	Prefs     Preferences

	gridSize int
}

// NewHuman spawns a human at a random cell with fresh preferences.
// Draw order: x, y, exploration, learning, independence.
func NewHuman(rng *rand.Rand, gridSize int, initialHunger float64) *Human {
	pos := Position{X: rng.Intn(gridSize), Y: rng.Intn(gridSize)}
	h := &Human{
		Pos:      pos,
		Hunger:   initialHunger,
		Visited:  map[Position]struct{}{pos: {}},
		gridSize: gridSize,
	}
	h.Prefs = Preferences{
		Exploration:  rng.Float64(),
		Learning:     rng.Float64(),
		Independence: rng.Float64(),
	}
	return h
}

// Move takes a random step with probability Prefs.Exploration.
func (h *Human) Move(rng *rand.Rand) {
	if rng.Float64() >= h.Prefs.Exploration {
		return
	}
	step := Position{X: h.Pos.X + rng.Intn(3) - 1, Y: h.Pos.Y + rng.Intn(3) - 1}
	h.Pos = step.Clamp(h.gridSize)
	h.Visited[h.Pos] = struct{}{}
}

// LoseHunger subtracts one tick of decay. Hunger may go negative.
func (h *Human) LoseHunger(decay float64) {
	h.Hunger -= decay
}

// IsAlive reports whether hunger is still positive.
func (h *Human) IsAlive() bool {
	return h.Hunger > 0
}

// VisitedCount returns the number of distinct cells visited.
func (h *Human) VisitedCount() int {
	return len(h.Visited)
}
