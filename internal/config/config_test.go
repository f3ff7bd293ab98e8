package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultEscapeConfigValid(t *testing.T) {
	cfg := DefaultEscapeConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg EscapeConfig
	if err := yaml.Unmarshal(GetDefaultYAML("escape"), &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if cfg != DefaultEscapeConfig() {
		t.Errorf("embedded yaml = %+v\nexpected %+v", cfg, DefaultEscapeConfig())
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no embedded yaml")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*EscapeConfig)
	}{
		{"negative width", func(c *EscapeConfig) { c.World.Width = -800 }},
		{"zero height", func(c *EscapeConfig) { c.World.Height = 0 }},
		{"floor outside world", func(c *EscapeConfig) { c.World.FloorMargin = 600 }},
		{"no gravity", func(c *EscapeConfig) { c.World.Gravity = 0 }},
		{"no tick rate", func(c *EscapeConfig) { c.World.TickRate = 0 }},
		{"player wider than world", func(c *EscapeConfig) { c.Player.Width = 900 }},
		{"max below run speed", func(c *EscapeConfig) { c.Player.MaxRunSpeed = 3 }},
		{"friction of one", func(c *EscapeConfig) { c.Player.Friction = 1 }},
		{"downward jump", func(c *EscapeConfig) { c.Player.JumpPower = 15 }},
		{"no jumps", func(c *EscapeConfig) { c.Player.MaxJumps = 0 }},
		{"negative cooldown", func(c *EscapeConfig) { c.Player.FireCooldownTicks = -1 }},
		{"start fraction", func(c *EscapeConfig) { c.Adversary.StartXFrac = 1.5 }},
		{"zero stun", func(c *EscapeConfig) { c.Adversary.StunTicks = 0 }},
		{"zero projectile speed", func(c *EscapeConfig) { c.Projectile.Speed = 0 }},
		{"zero catch distance", func(c *EscapeConfig) { c.Session.CatchDistance = 0 }},
		{"unknown progression", func(c *EscapeConfig) { c.Difficulty.Progression.Type = "score" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultEscapeConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error %v should wrap ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadEscapeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "escape.yaml")
	data := []byte("adversary:\n  speed: 3.5\nworld:\n  width: 1024\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadEscape(path)
	if err != nil {
		t.Fatalf("LoadEscape() error = %v", err)
	}
	if cfg.Adversary.Speed != 3.5 {
		t.Errorf("Adversary.Speed = %v, expected 3.5", cfg.Adversary.Speed)
	}
	if cfg.World.Width != 1024 {
		t.Errorf("World.Width = %v, expected 1024", cfg.World.Width)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Player.JumpPower != -15 {
		t.Errorf("Player.JumpPower = %v, expected default -15", cfg.Player.JumpPower)
	}
}

func TestLoadEscapeCustomPathErrors(t *testing.T) {
	if _, err := LoadEscape(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("world: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadEscape(path); err == nil {
		t.Error("malformed custom file should be an error")
	}
}

func TestLoadEscapeFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadEscape("")
	if err != nil {
		t.Fatalf("LoadEscape() error = %v", err)
	}
	if cfg != DefaultEscapeConfig() {
		t.Errorf("LoadEscape(\"\") = %+v, expected defaults", cfg)
	}
}

func TestLoadEscapeLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.Mkdir("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "escape.yaml"), []byte("projectile:\n  speed: 14\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadEscape("")
	if err != nil {
		t.Fatalf("LoadEscape() error = %v", err)
	}
	if cfg.Projectile.Speed != 14 {
		t.Errorf("Projectile.Speed = %v, expected 14 from ./configs", cfg.Projectile.Speed)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
	}{
		{"easy", DifficultyEasy},
		{"normal", DifficultyNormal},
		{"hard", DifficultyHard},
		{"fixed", DifficultyFixed},
		{"nightmare", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ParsePreset(tt.in); got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyEscapePreset(t *testing.T) {
	cfg := DefaultEscapeConfig()
	ApplyEscapePreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable difficulty")
	}

	cfg = DefaultEscapeConfig()
	ApplyEscapePreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset gave %+v", cfg.Difficulty)
	}

	cfg = DefaultEscapeConfig()
	ApplyEscapePreset(&cfg, DifficultyEasy)
	if cfg.Adversary.StunTicks != 150 {
		t.Errorf("easy preset StunTicks = %d, expected 150", cfg.Adversary.StunTicks)
	}
}
