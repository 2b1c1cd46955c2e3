package systems

import (
	"slices"

	"github.com/pthm-cable/obeh/components"
)

// Channel is the append-only measurement channel of per-tick happiness.
type Channel struct {
	samples []float64

	initialHunger float64
	knowledgeNorm float64
	autonomyNorm  float64
}

// NewChannel creates an empty channel normalising against the given scales.
func NewChannel(initialHunger, knowledgeNorm, autonomyNorm float64) Channel {
	return Channel{
		initialHunger: initialHunger,
		knowledgeNorm: knowledgeNorm,
		autonomyNorm:  autonomyNorm,
	}
}

// Happiness blends hunger, knowledge and autonomy into a score capped at 1.
// It is not floored: a starving human yields a negative sample.
func (c *Channel) Happiness(h *components.Human) float64 {
	v := (h.Hunger/c.initialHunger)*0.3 +
		min(1.0, h.Knowledge/c.knowledgeNorm)*0.4 +
		min(1.0, h.Autonomy/c.autonomyNorm)*0.3
	return min(1.0, v)
}

// Collect appends the human's current happiness.
func (c *Channel) Collect(h *components.Human) {
	c.samples = append(c.samples, c.Happiness(h))
}

// Len returns the number of samples collected.
func (c *Channel) Len() int {
	return len(c.samples)
}

// Samples returns a copy of the history.
func (c *Channel) Samples() []float64 {
	return slices.Clone(c.samples)
}
