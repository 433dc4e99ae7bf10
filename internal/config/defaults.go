package config

import (
	_ "embed"
)

//go:embed defaults/rockswap.yaml
var defaultRockswapYAML []byte

// DefaultRockswapConfig returns the default RockSwap configuration.
// Matches the classic 8x8 six-color board.
func DefaultRockswapConfig() RockswapConfig {
	return RockswapConfig{
		Board: BoardConfig{
			Width:  8,
			Height: 8,
			Colors: 6,
		},
		Scoring: ScoringConfig{
			PointsPerCell: 10,
			PassCeiling:   80,
		},
		Render: RenderConfig{
			ResolveEveryTicks: 18, // ~0.3s between passes at 60fps
			HighlightTicks:    12,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "rockswap", "rockswap_mini", "rockswap_grand":
		return defaultRockswapYAML
	default:
		return nil
	}
}
