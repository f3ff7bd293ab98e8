package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadEscape loads the escape configuration.
// Search order: customPath -> ~/.escape/configs/escape.yaml -> ./configs/escape.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides
// the keys it names.
func LoadEscape(customPath string) (EscapeConfig, error) {
	cfg := DefaultEscapeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("escape.yaml"); userCfgPath != "" {
		if c, ok := decodeFile(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := decodeFile(filepath.Join("configs", "escape.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	embedded := DefaultEscapeConfig()
	if err := yaml.Unmarshal(defaultEscapeYAML, &embedded); err != nil {
		return DefaultEscapeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// decodeFile reads an optional config file. Missing or malformed files are
// skipped so the next location in the search order is tried.
func decodeFile(path string) (EscapeConfig, bool) {
	cfg := DefaultEscapeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".escape", "configs", filename)
}

// ApplyEscapePreset modifies the config based on a difficulty preset.
func ApplyEscapePreset(cfg *EscapeConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Easy mode also keeps the adversary dazed a little longer.
	if preset == DifficultyEasy {
		cfg.Adversary.StunTicks += cfg.Adversary.StunTicks / 4
	}
}
