package systems

// Defenses tracks the parent's native defenses: tolerance to the human
// failing and the strength of the bond built through interaction.
type Defenses struct {
	FailuresObserved int
	FailureTolerance float64 // saturates at 1
	Interactions     int
	BondEstablished  bool
	BondStrength     float64 // saturates at 1

	toleranceStep float64
	bondStep      float64
}

// NewDefenses creates empty defenses with the given increments.
func NewDefenses(toleranceStep, bondStep float64) Defenses {
	return Defenses{toleranceStep: toleranceStep, bondStep: bondStep}
}

// ObserveFailure records a tick on which the human was in distress.
func (d *Defenses) ObserveFailure() {
	d.FailuresObserved++
	d.FailureTolerance = min(1.0, d.FailureTolerance+d.toleranceStep)
}

// ObserveInteraction records a successful feed or teach.
func (d *Defenses) ObserveInteraction() {
	d.Interactions++
	d.BondEstablished = true
	d.BondStrength = min(1.0, d.BondStrength+d.bondStep)
}
