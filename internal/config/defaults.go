package config

import (
	_ "embed"
)

//go:embed defaults/escape.yaml
var defaultEscapeYAML []byte

// DefaultEscapeConfig returns the default escape configuration.
func DefaultEscapeConfig() EscapeConfig {
	return EscapeConfig{
		World: WorldConfig{
			Width:       800,
			Height:      480,
			FloorMargin: 100,
			Gravity:     0.5,
			TickRate:    60,
		},
		Player: PlayerConfig{
			Width:             40,
			Height:            50,
			StartX:            50,
			StartOffset:       150,
			RunSpeed:          6,
			MaxRunSpeed:       12,
			Accel:             1,
			Friction:          0.85,
			JumpPower:         -15,
			MaxJumps:          2,
			FireCooldownTicks: 18, // 300ms at 60 ticks/s
		},
		Adversary: AdversaryConfig{
			Width:          45,
			Height:         60,
			StartXFrac:     0.8,
			StartOffset:    150,
			Speed:          2,
			DeadZone:       5,
			StunTicks:      120,
			WanderInterval: 60,
			HitRadius:      45,
		},
		Projectile: ProjectileConfig{
			Radius: 8,
			Speed:  10,
		},
		Session: SessionConfig{
			CatchDistance: 50,
			ExitMargin:    100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				StunReduction:   40,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "escape":
		return defaultEscapeYAML
	default:
		return nil
	}
}
