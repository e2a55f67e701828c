package config

// StoreConfig contains hitbox store limits
type StoreConfig struct {
	// MaxHitboxes caps live hitboxes per store. Zero means unlimited.
	MaxHitboxes int
}

// SimConfig contains defaults for the reference simulation
type SimConfig struct {
	MaxSteps int     // Last step index; steps run 0..MaxSteps inclusive
	StepDX   float64 // Horizontal move applied to the mover after each step
	StepDY   float64 // Vertical move applied to the mover after each step

	// Reference pair
	Mover  BoxSpec
	Target BoxSpec
}

// Global configuration instances
var Store StoreConfig
var Sim SimConfig

func init() {
	// Store Config
	Store = StoreConfig{
		MaxHitboxes: 4096,
	}

	// Sim Config
	Sim = SimConfig{
		MaxSteps: 6,
		StepDX:   1.0,
		StepDY:   0,

		Mover: BoxSpec{
			Label: "Player",
			X:     0,
			Y:     0,
			W:     1,
			H:     2,
		},
		Target: BoxSpec{
			Label: "Enemy",
			X:     5,
			Y:     0,
			W:     2,
			H:     2,
		},
	}
}
