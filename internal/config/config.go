// Package config provides YAML-based configuration loading for the
// rockswap platform.
package config

import "fmt"

// Board size and palette limits. The engine addresses tiles with eight
// named colors, so the palette can never exceed eight.
const (
	MinBoardSide = 4
	MaxBoardSide = 16
	MinColors    = 3
	MaxColors    = 8
)

// RockswapConfig contains all tunable parameters for a RockSwap board.
type RockswapConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Scoring ScoringConfig `yaml:"scoring"`
	Render  RenderConfig  `yaml:"render"`
}

// BoardConfig defines the board dimensions and tile palette.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Colors int `yaml:"colors"`
}

// ScoringConfig defines how cleared tiles convert to points.
type ScoringConfig struct {
	PointsPerCell int `yaml:"points_per_cell"` // Base points per cleared cell
	PassCeiling   int `yaml:"pass_ceiling"`    // Max cascade passes resolved per move
}

// RenderConfig defines cascade pacing for interactive play.
type RenderConfig struct {
	ResolveEveryTicks int `yaml:"resolve_every_ticks"` // Ticks between cascade passes
	HighlightTicks    int `yaml:"highlight_ticks"`     // Ticks cleared cells stay highlighted
}

// Validate checks that the configuration describes a playable board.
func (c RockswapConfig) Validate() error {
	if c.Board.Width < MinBoardSide || c.Board.Width > MaxBoardSide {
		return fmt.Errorf("config: board width %d out of range [%d, %d]", c.Board.Width, MinBoardSide, MaxBoardSide)
	}
	if c.Board.Height < MinBoardSide || c.Board.Height > MaxBoardSide {
		return fmt.Errorf("config: board height %d out of range [%d, %d]", c.Board.Height, MinBoardSide, MaxBoardSide)
	}
	if c.Board.Colors < MinColors || c.Board.Colors > MaxColors {
		return fmt.Errorf("config: palette size %d out of range [%d, %d]", c.Board.Colors, MinColors, MaxColors)
	}
	if c.Scoring.PointsPerCell < 1 {
		return fmt.Errorf("config: points per cell must be positive, got %d", c.Scoring.PointsPerCell)
	}
	if c.Scoring.PassCeiling < 1 {
		return fmt.Errorf("config: pass ceiling must be positive, got %d", c.Scoring.PassCeiling)
	}
	if c.Render.ResolveEveryTicks < 1 {
		return fmt.Errorf("config: resolve pacing must be positive, got %d", c.Render.ResolveEveryTicks)
	}
	return nil
}

// BoardPreset represents a named board layout.
type BoardPreset string

const (
	PresetClassic BoardPreset = "classic"
	PresetMini    BoardPreset = "mini"
	PresetGrand   BoardPreset = "grand"
)

// ParseBoardPreset converts a preset name to a BoardPreset.
// Unknown names return the empty preset, which leaves the config untouched.
func ParseBoardPreset(name string) BoardPreset {
	switch name {
	case "classic":
		return PresetClassic
	case "mini":
		return PresetMini
	case "grand":
		return PresetGrand
	default:
		return ""
	}
}
