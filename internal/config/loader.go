package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRockswap loads the RockSwap board configuration.
// Search order: customPath -> ~/.rockswap/configs/rockswap.yaml -> ./configs/rockswap.yaml -> embedded default
func LoadRockswap(customPath string) (RockswapConfig, error) {
	var cfg RockswapConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("rockswap.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/rockswap.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRockswapYAML, &cfg); err != nil {
		return DefaultRockswapConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rockswap", "configs", filename)
}

// ApplyBoardPreset modifies the board layout based on a named preset.
// The empty preset leaves the config untouched.
func ApplyBoardPreset(cfg *RockswapConfig, preset BoardPreset) {
	switch preset {
	case PresetClassic:
		cfg.Board.Width = 8
		cfg.Board.Height = 8
		cfg.Board.Colors = 6
	case PresetMini:
		cfg.Board.Width = 6
		cfg.Board.Height = 6
		cfg.Board.Colors = 5
	case PresetGrand:
		cfg.Board.Width = 10
		cfg.Board.Height = 8
		cfg.Board.Colors = 7
	}
}
