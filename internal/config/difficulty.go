package config

import "math"

// minStunTicks keeps a stun long enough to be noticed at any difficulty.
const minStunTicks = 30

// DifficultyManager calculates dynamic game parameters from the level reached.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type == "level"
}

// Level returns the difficulty (0.0 to 1.0) for the given 1-based game level.
// A disabled manager reports 0 so every tunable keeps its base value.
func (d *DifficultyManager) Level(gameLevel int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type != "level" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt - 1)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(gameLevel-1)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// AdversarySpeed returns the pursuer speed for a game level.
func (d *DifficultyManager) AdversarySpeed(baseSpeed float64, gameLevel int) float64 {
	level := d.Level(gameLevel)
	// Speed increases from base to base * (1 + speedMultiplier)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// StunTicks returns the stun duration for a game level.
func (d *DifficultyManager) StunTicks(baseTicks int, gameLevel int) int {
	level := d.Level(gameLevel)
	result := baseTicks - int(level*float64(d.cfg.Scaling.StunReduction))
	if result < minStunTicks {
		result = minStunTicks
	}
	if result > baseTicks {
		result = baseTicks
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
