package telemetry

import (
	"fmt"

	"github.com/pthm-cable/obeh/config"
)

// Check is one pass/fail line of the validation section.
type Check struct {
	Name   string
	Passed bool
	Pass   string // message when passed
	Fail   string // message when failed
}

// Message returns the line to print for the check's outcome.
func (c Check) Message() string {
	if c.Passed {
		return c.Pass
	}
	return c.Fail
}

// Validate checks batch statistics against the configured thresholds.
func Validate(s BatchStats, vc config.ValidationConfig) []Check {
	return []Check{
		{
			Name:   "survival",
			Passed: s.Ticks.Mean > vc.MinMeanTicks,
			Pass:   fmt.Sprintf("Survival ensured (mean > %g ticks)", vc.MinMeanTicks),
			Fail:   "Survival insufficient",
		},
		{
			Name:   "flourishing",
			Passed: s.Knowledge.Mean > vc.MinMeanKnowledge,
			Pass:   fmt.Sprintf("Flourishing present (knowledge > %g)", vc.MinMeanKnowledge),
			Fail:   "Flourishing insufficient",
		},
		{
			Name:   "overprotection",
			Passed: s.FailurePercent() > vc.MinFailurePercent,
			Pass:   fmt.Sprintf("No overprotection (%.0f%% experienced failure)", s.FailurePercent()),
			Fail:   "Overprotection detected",
		},
		{
			Name:   "obeh",
			Passed: s.OBEH.Mean > vc.MinMeanOBEH,
			Pass:   "OBEH positive (system globally beneficial)",
			Fail:   "OBEH negative",
		},
	}
}

// AllPassed reports whether every check passed.
func AllPassed(checks []Check) bool {
	for _, c := range checks {
		if !c.Passed {
			return false
		}
	}
	return true
}
