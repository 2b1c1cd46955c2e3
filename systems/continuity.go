package systems

// Trend is the direction of the human's autonomy over the recent past.
type Trend uint8

const (
	TrendStable Trend = iota
	TrendGrowth
	TrendRegression
)

func (t Trend) String() string {
	switch t {
	case TrendGrowth:
		return "growth"
	case TrendRegression:
		return "regression"
	}
	return "stable"
}

// Continuity keeps the autonomy history and derives its trend.
type Continuity struct {
	values []float64

	window int
	margin float64
}

// NewContinuity compares the last window samples against the window before.
func NewContinuity(window int, margin float64) Continuity {
	return Continuity{window: window, margin: margin}
}

// Observe appends an autonomy sample.
func (c *Continuity) Observe(autonomy float64) {
	c.values = append(c.values, autonomy)
}

// Len returns the number of samples observed.
func (c *Continuity) Len() int {
	return len(c.values)
}

// Trend is stable until two full windows have been observed.
func (c *Continuity) Trend() Trend {
	n := len(c.values)
	if n < 2*c.window {
		return TrendStable
	}
	recent := mean(c.values[n-c.window:])
	older := mean(c.values[n-2*c.window : n-c.window])
	switch {
	case recent > older+c.margin:
		return TrendGrowth
	case recent < older-c.margin:
		return TrendRegression
	}
	return TrendStable
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
