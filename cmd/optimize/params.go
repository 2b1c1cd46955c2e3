package main

import (
	"github.com/pthm-cable/obeh/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name  string                        // Human-readable name
	Path  string                        // Config path for logging
	Min   float64                       // Lower bound
	Max   float64                       // Upper bound
	Field func(*config.Config) *float64 // Location of the value in a Config
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable policy parameters.
// Reward weights and normalisers are not tuned.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "urgency", Path: "thresholds.urgency", Min: 1, Max: 6,
				Field: func(c *config.Config) *float64 { return &c.Thresholds.Urgency }},
			{Name: "teaching_hunger", Path: "thresholds.teaching_hunger", Min: 2, Max: 8,
				Field: func(c *config.Config) *float64 { return &c.Thresholds.TeachingHunger }},
			{Name: "independence_cutoff", Path: "policy.independence_cutoff", Min: 0.5, Max: 1.0,
				Field: func(c *config.Config) *float64 { return &c.Policy.IndependenceCutoff }},
			{Name: "continuity_autonomy", Path: "policy.continuity_autonomy", Min: 2, Max: 20,
				Field: func(c *config.Config) *float64 { return &c.Policy.ContinuityAutonomy }},
			{Name: "security_scale", Path: "policy.security_scale", Min: 20, Max: 200,
				Field: func(c *config.Config) *float64 { return &c.Policy.SecurityScale }},
			{Name: "flourishing_scale", Path: "policy.flourishing_scale", Min: 5, Max: 60,
				Field: func(c *config.Config) *float64 { return &c.Policy.FlourishingScale }},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = min(spec.Max, max(spec.Min, v[i]))
	}
	return clamped
}

// ApplyToConfig writes clamped parameter values into cfg.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)
	for i, spec := range pv.Specs {
		*spec.Field(cfg) = clamped[i]
	}
}

// ExtractFromConfig reads the current parameter values from cfg.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	values := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		values[i] = *spec.Field(cfg)
	}
	return values
}
