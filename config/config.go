// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Human      HumanConfig      `yaml:"human"`
	Thresholds ThresholdsConfig `yaml:"thresholds"`
	Policy     PolicyConfig     `yaml:"policy"`
	Defenses   DefensesConfig   `yaml:"defenses"`
	Reward     RewardConfig     `yaml:"reward"`
	Batch      BatchConfig      `yaml:"batch"`
	Validation ValidationConfig `yaml:"validation"`
}

// WorldConfig holds grid and episode dimensions.
type WorldConfig struct {
	GridSize int `yaml:"grid_size"` // Side of the square grid (cells)
	MaxTicks int `yaml:"max_ticks"` // Tick ceiling per trial
}

// HumanConfig holds hunger dynamics for the human agent.
type HumanConfig struct {
	InitialHunger float64 `yaml:"initial_hunger"` // Starting hunger, also the value a feed restores
	HungerDecay   float64 `yaml:"hunger_decay"`   // Hunger lost per tick
}

// ThresholdsConfig holds the hunger thresholds that drive the policy.
type ThresholdsConfig struct {
	Urgency        float64 `yaml:"urgency"`         // Emergency clause fires at hunger <= this
	TeachingHunger float64 `yaml:"teaching_hunger"` // Teaching requires hunger > this
	FailureHunger  float64 `yaml:"failure_hunger"`  // A tick with hunger < this counts as a failure
}

// PolicyConfig holds the parent agent's decision parameters.
type PolicyConfig struct {
	IndependenceCutoff float64 `yaml:"independence_cutoff"` // Independence preference above this forces observation
	ContinuityAutonomy float64 `yaml:"continuity_autonomy"` // Autonomy above this (with growth) forces observation
	TrendWindow        int     `yaml:"trend_window"`        // Samples per half of the trend comparison
	TrendMargin        float64 `yaml:"trend_margin"`        // Mean difference needed for growth/regression
	SecurityScale      float64 `yaml:"security_scale"`      // Numerator of the security score
	FlourishingScale   float64 `yaml:"flourishing_scale"`   // Numerator of the flourishing score
}

// DefensesConfig holds native defense increments.
type DefensesConfig struct {
	ToleranceStep float64 `yaml:"tolerance_step"` // Failure tolerance gain per observed failure
	BondStep      float64 `yaml:"bond_step"`      // Bond strength gain per interaction
}

// RewardConfig holds OBEH weights and normalisers.
type RewardConfig struct {
	W1Security       float64 `yaml:"w1_security"`
	W2Flourishing    float64 `yaml:"w2_flourishing"`
	W3Overprotection float64 `yaml:"w3_overprotection"`

	KnowledgeNorm float64 `yaml:"knowledge_norm"` // Knowledge that saturates its flourishing term
	AutonomyNorm  float64 `yaml:"autonomy_norm"`  // Autonomy that saturates its flourishing term
	VisitedNorm   float64 `yaml:"visited_norm"`   // Visited cells that saturate exploration

	PenaltyNone float64 `yaml:"penalty_none"` // Overprotection penalty with zero failure ticks
	PenaltyFew  float64 `yaml:"penalty_few"`  // Penalty with fewer than FewFailures failure ticks
	FewFailures int     `yaml:"few_failures"` // Failure count at which the penalty drops to zero
}

// BatchConfig holds batch driver parameters.
type BatchConfig struct {
	Trials        int `yaml:"trials"`
	ProgressEvery int `yaml:"progress_every"` // Progress line every N completed trials
	Workers       int `yaml:"workers"`        // Concurrent trials (1 = sequential)
}

// ValidationConfig holds the pass/fail thresholds of the final report.
type ValidationConfig struct {
	MinMeanTicks      float64 `yaml:"min_mean_ticks"`
	MinMeanKnowledge  float64 `yaml:"min_mean_knowledge"`
	MinFailurePercent float64 `yaml:"min_failure_percent"`
	MinMeanOBEH       float64 `yaml:"min_mean_obeh"`
}

// ErrInvalid is wrapped by every Validate error.
var ErrInvalid = errors.New("invalid config")

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are broken: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.World.GridSize <= 0:
		return fmt.Errorf("%w: world.grid_size must be positive, got %d", ErrInvalid, c.World.GridSize)
	case c.World.MaxTicks <= 0:
		return fmt.Errorf("%w: world.max_ticks must be positive, got %d", ErrInvalid, c.World.MaxTicks)
	case c.Human.InitialHunger <= 0:
		return fmt.Errorf("%w: human.initial_hunger must be positive, got %g", ErrInvalid, c.Human.InitialHunger)
	case c.Human.HungerDecay <= 0:
		return fmt.Errorf("%w: human.hunger_decay must be positive, got %g", ErrInvalid, c.Human.HungerDecay)
	case c.Policy.TrendWindow <= 0:
		return fmt.Errorf("%w: policy.trend_window must be positive, got %d", ErrInvalid, c.Policy.TrendWindow)
	case c.Reward.KnowledgeNorm <= 0 || c.Reward.AutonomyNorm <= 0 || c.Reward.VisitedNorm <= 0:
		return fmt.Errorf("%w: reward normalisers must be positive", ErrInvalid)
	case c.Batch.Trials <= 0:
		return fmt.Errorf("%w: batch.trials must be positive, got %d", ErrInvalid, c.Batch.Trials)
	case c.Batch.ProgressEvery <= 0:
		return fmt.Errorf("%w: batch.progress_every must be positive, got %d", ErrInvalid, c.Batch.ProgressEvery)
	}
	return nil
}

// Workers returns the configured worker count, never less than one.
func (c *Config) Workers() int {
	if c.Batch.Workers < 1 {
		return 1
	}
	return c.Batch.Workers
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Clone returns an independent copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
