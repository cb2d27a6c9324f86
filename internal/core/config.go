package core

// RuntimeConfig contains configuration passed to scenarios and the platform
// at initialization. Scenarios use it to scale their worlds to the screen and
// for deterministic setup.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic scenario generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// SimState represents the current state of a running scenario, reported to
// the platform after every tick.
type SimState struct {
	Tick   int    // Ticks simulated since the last reset
	Bodies int    // Bodies currently in the world
	Paused bool   // Whether the simulation is paused
	Status string // One-line scenario status for the HUD
}

// StepResult is returned by Scenario.Step() after each simulation tick.
type StepResult struct {
	State SimState
}
