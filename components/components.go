// Package components defines the per-trial agent state for the simulation.
package components

// Position is a cell on the square grid.
type Position struct {
	X, Y int
}

// Clamp returns p constrained to a grid of the given side.
func (p Position) Clamp(size int) Position {
	return Position{X: clampInt(p.X, 0, size-1), Y: clampInt(p.Y, 0, size-1)}
}

// StepToward moves one cell toward target on each axis independently.
// Both axes may change in the same step.
func (p Position) StepToward(target Position) Position {
	return Position{X: p.X + sign(target.X-p.X), Y: p.Y + sign(target.Y-p.Y)}
}

// Manhattan returns |dx| + |dy|.
func Manhattan(a, b Position) int {
	return absInt(a.X-b.X) + absInt(a.Y-b.Y)
}

// Chebyshev returns max(|dx|, |dy|).
func Chebyshev(a, b Position) int {
	return max(absInt(a.X-b.X), absInt(a.Y-b.Y))
}

// Adjacent reports whether a and b are within one cell, diagonals included.
func Adjacent(a, b Position) bool {
	return Chebyshev(a, b) <= 1
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
