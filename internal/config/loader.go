package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFalling loads Falling Up configuration.
// Search order: customPath -> ~/.fallingup/configs/fallingup.yaml -> ./configs/fallingup.yaml -> embedded default
func LoadFalling(customPath string) (FallingConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FallingConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return FallingConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("fallingup.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/fallingup.yaml"); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultFallingYAML)
	if err != nil {
		return DefaultFallingConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes a YAML document over the defaults, so partial files only
// override the keys they mention, and validates the result.
func parse(data []byte) (FallingConfig, error) {
	cfg := DefaultFallingConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FallingConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return FallingConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fallingup", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *FallingConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Scroll.InitialSpeed *= SpeedFactorForPreset(preset)
}
