// Package config provides YAML-based game configuration loading, validation
// and difficulty management.
package config

import (
	"errors"
	"fmt"
)

// EscapeConfig contains all tunables of the escape simulation. Distances are
// world units, speeds are world units per tick, durations are ticks.
type EscapeConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Adversary  AdversaryConfig  `yaml:"adversary"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Session    SessionConfig    `yaml:"session"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the playfield.
type WorldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	FloorMargin float64 `yaml:"floor_margin"` // Floor line is Height - FloorMargin
	Gravity     float64 `yaml:"gravity"`      // Added to downward velocity every tick
	TickRate    int     `yaml:"tick_rate"`    // Simulation ticks per second
}

// PlayerConfig defines the player body and controls.
type PlayerConfig struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	StartX            float64 `yaml:"start_x"`
	StartOffset       float64 `yaml:"start_offset"` // Start y is world height - StartOffset
	RunSpeed          float64 `yaml:"run_speed"`
	MaxRunSpeed       float64 `yaml:"max_run_speed"`
	Accel             float64 `yaml:"accel"`
	Friction          float64 `yaml:"friction"`
	JumpPower         float64 `yaml:"jump_power"` // Negative is upward
	MaxJumps          int     `yaml:"max_jumps"`
	FireCooldownTicks int     `yaml:"fire_cooldown_ticks"`
}

// AdversaryConfig defines the pursuer.
type AdversaryConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	StartXFrac     float64 `yaml:"start_x_frac"` // Start x is world width * StartXFrac
	StartOffset    float64 `yaml:"start_offset"`
	Speed          float64 `yaml:"speed"`
	DeadZone       float64 `yaml:"dead_zone"`
	StunTicks      int     `yaml:"stun_ticks"`
	WanderInterval int     `yaml:"wander_interval"`
	HitRadius      float64 `yaml:"hit_radius"`
}

// ProjectileConfig defines thrown projectiles.
type ProjectileConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
}

// SessionConfig defines end-of-tick checks.
type SessionConfig struct {
	CatchDistance float64 `yaml:"catch_distance"`    // Center distance that ends the run
	ExitMargin    float64 `yaml:"level_exit_margin"` // Level completes past world width - ExitMargin
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Level at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to adversary speed factor at max difficulty
	StunReduction   int     `yaml:"stun_reduction"`   // Stun ticks removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the configuration for values that would make the
// simulation meaningless. A failing config is fatal to starting a session.
func (c *EscapeConfig) Validate() error {
	w := c.World
	switch {
	case w.Width <= 0 || w.Height <= 0:
		return fmt.Errorf("config: world size %gx%g must be positive: %w", w.Width, w.Height, ErrInvalidConfig)
	case w.FloorMargin < 0 || w.FloorMargin >= w.Height:
		return fmt.Errorf("config: floor_margin %g outside world height %g: %w", w.FloorMargin, w.Height, ErrInvalidConfig)
	case w.Gravity <= 0:
		return fmt.Errorf("config: gravity %g must be positive: %w", w.Gravity, ErrInvalidConfig)
	case w.TickRate <= 0:
		return fmt.Errorf("config: tick_rate %d must be positive: %w", w.TickRate, ErrInvalidConfig)
	}

	p := c.Player
	switch {
	case p.Width <= 0 || p.Height <= 0 || p.Width > w.Width:
		return fmt.Errorf("config: player size %gx%g does not fit the world: %w", p.Width, p.Height, ErrInvalidConfig)
	case p.RunSpeed <= 0 || p.MaxRunSpeed < p.RunSpeed:
		return fmt.Errorf("config: player speeds run=%g max=%g: %w", p.RunSpeed, p.MaxRunSpeed, ErrInvalidConfig)
	case p.Accel <= 0:
		return fmt.Errorf("config: player accel %g must be positive: %w", p.Accel, ErrInvalidConfig)
	case p.Friction <= 0 || p.Friction >= 1:
		return fmt.Errorf("config: player friction %g must be in (0, 1): %w", p.Friction, ErrInvalidConfig)
	case p.JumpPower >= 0:
		return fmt.Errorf("config: player jump_power %g must be negative (upward): %w", p.JumpPower, ErrInvalidConfig)
	case p.MaxJumps < 1:
		return fmt.Errorf("config: player max_jumps %d must be at least 1: %w", p.MaxJumps, ErrInvalidConfig)
	case p.FireCooldownTicks < 0:
		return fmt.Errorf("config: player fire_cooldown_ticks %d must not be negative: %w", p.FireCooldownTicks, ErrInvalidConfig)
	}

	a := c.Adversary
	switch {
	case a.Width <= 0 || a.Height <= 0 || a.Width > w.Width:
		return fmt.Errorf("config: adversary size %gx%g does not fit the world: %w", a.Width, a.Height, ErrInvalidConfig)
	case a.StartXFrac < 0 || a.StartXFrac > 1:
		return fmt.Errorf("config: adversary start_x_frac %g must be in [0, 1]: %w", a.StartXFrac, ErrInvalidConfig)
	case a.Speed < 0 || a.DeadZone < 0 || a.HitRadius <= 0:
		return fmt.Errorf("config: adversary speed/dead_zone/hit_radius out of range: %w", ErrInvalidConfig)
	case a.StunTicks <= 0 || a.WanderInterval <= 0:
		return fmt.Errorf("config: adversary stun_ticks and wander_interval must be positive: %w", ErrInvalidConfig)
	}

	if c.Projectile.Radius <= 0 || c.Projectile.Speed <= 0 {
		return fmt.Errorf("config: projectile radius and speed must be positive: %w", ErrInvalidConfig)
	}
	if c.Session.CatchDistance <= 0 || c.Session.ExitMargin < 0 || c.Session.ExitMargin > w.Width {
		return fmt.Errorf("config: session catch_distance/exit_margin out of range: %w", ErrInvalidConfig)
	}

	switch c.Difficulty.Progression.Type {
	case "", "none", "level":
	default:
		return fmt.Errorf("config: unknown progression type %q: %w", c.Difficulty.Progression.Type, ErrInvalidConfig)
	}
	return nil
}
