package core

// RuntimeConfig contains configuration passed to games at initialization.
// ScreenW/ScreenH are the renderer's grid size; the simulation runs in its
// own world units and is scaled at render time.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// GameState is the summary the platform needs after each tick.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level (1-based)
	Stuns    int  // Successful projectile hits this run
	Ticks    int  // Simulation ticks spent playing this run
	Started  bool // Whether the intro has been dismissed
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Events holds short human-readable notes about what happened this
	// tick ("level 2", "stunned"), consumed by the platform for logging.
	Events []string
}
