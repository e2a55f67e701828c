package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BoxSpec describes one hitbox of a scenario by center and size.
type BoxSpec struct {
	Label string  `yaml:"label"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w"`
	H     float64 `yaml:"h"`
}

// Step is the per-step displacement of the mover.
type Step struct {
	DX float64 `yaml:"dx"`
	DY float64 `yaml:"dy"`
}

// Scenario drives the reference simulation: a mover walks toward a target
// one step at a time until they collide or MaxSteps is reached.
//
// Example file:
//
//	mover:    {label: Player, x: 0, y: 0, w: 1, h: 2}
//	target:   {label: Enemy,  x: 5, y: 0, w: 2, h: 2}
//	step:     {dx: 1, dy: 0}
//	maxSteps: 6
type Scenario struct {
	Mover    BoxSpec `yaml:"mover"`
	Target   BoxSpec `yaml:"target"`
	Step     Step    `yaml:"step"`
	MaxSteps int     `yaml:"maxSteps"`
}

// DefaultScenario returns the reference scenario built from Sim.
func DefaultScenario() Scenario {
	return Scenario{
		Mover:    Sim.Mover,
		Target:   Sim.Target,
		Step:     Step{DX: Sim.StepDX, DY: Sim.StepDY},
		MaxSteps: Sim.MaxSteps,
	}
}

// ParseScenario decodes YAML on top of DefaultScenario, so a file only needs
// the fields it changes.
func ParseScenario(data []byte) (Scenario, error) {
	sc := DefaultScenario()
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return Scenario{}, fmt.Errorf("invalid scenario: %w", err)
	}
	return sc, nil
}

// LoadScenario reads and parses a YAML scenario file.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("failed to read scenario: %w", err)
	}
	return ParseScenario(data)
}

// Validate checks the fields the simulation depends on.
// Sizes are not checked; negative sizes are a legal, if degenerate, input.
func (s Scenario) Validate() error {
	if s.Mover.Label == "" {
		return errors.New("mover label is empty")
	}
	if s.Target.Label == "" {
		return errors.New("target label is empty")
	}
	if s.MaxSteps < 0 {
		return fmt.Errorf("maxSteps must be >= 0, got %d", s.MaxSteps)
	}
	return nil
}
