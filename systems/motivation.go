package systems

// Motivation labels the reason behind the parent's latest decision.
type Motivation uint8

const (
	MotivationObservation Motivation = iota // initial state
	MotivationProtection
	MotivationEducation
	MotivationRespect
)

func (m Motivation) String() string {
	switch m {
	case MotivationProtection:
		return "protection"
	case MotivationEducation:
		return "education"
	case MotivationObservation:
		return "observation"
	case MotivationRespect:
		return "respect"
	}
	return "unknown"
}

// Objective is the parent's current commitment. Feed and teach persist
// across ticks until satisfied; observe is re-evaluated every tick.
type Objective uint8

const (
	ObjectiveNone Objective = iota
	ObjectiveFeed
	ObjectiveTeach
	ObjectiveObserve
)

func (o Objective) String() string {
	switch o {
	case ObjectiveNone:
		return "none"
	case ObjectiveFeed:
		return "feed"
	case ObjectiveTeach:
		return "teach"
	case ObjectiveObserve:
		return "observe"
	}
	return "unknown"
}

// committed reports whether the objective survives the stability rule.
func (o Objective) committed() bool {
	return o == ObjectiveFeed || o == ObjectiveTeach
}
