package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultRockswapConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg RockswapConfig
	if err := yaml.Unmarshal(defaultRockswapYAML, &cfg); err != nil {
		t.Fatalf("embedded default failed to parse: %v", err)
	}

	if cfg != DefaultRockswapConfig() {
		t.Errorf("embedded default %+v diverges from hardcoded default %+v", cfg, DefaultRockswapConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	data := []byte("board:\n  width: 6\n  height: 6\n  colors: 5\nscoring:\n  points_per_cell: 20\n  pass_ceiling: 10\nrender:\n  resolve_every_ticks: 5\n  highlight_ticks: 3\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadRockswap(path)
	if err != nil {
		t.Fatalf("LoadRockswap failed: %v", err)
	}

	if cfg.Board.Width != 6 || cfg.Board.Height != 6 {
		t.Errorf("expected 6x6 board, got %dx%d", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Board.Colors != 5 {
		t.Errorf("expected 5 colors, got %d", cfg.Board.Colors)
	}
	if cfg.Scoring.PointsPerCell != 20 {
		t.Errorf("expected 20 points per cell, got %d", cfg.Scoring.PointsPerCell)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := LoadRockswap(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")

	// Width 99 is outside the playable range
	data := []byte("board:\n  width: 99\n  height: 8\n  colors: 6\nscoring:\n  points_per_cell: 10\n  pass_ceiling: 80\nrender:\n  resolve_every_ticks: 18\n  highlight_ticks: 12\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	if _, err := LoadRockswap(path); err == nil {
		t.Error("expected error for out-of-range board width")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	// Point HOME at an empty dir so no user config is picked up
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadRockswap("")
	if err != nil {
		t.Fatalf("LoadRockswap failed: %v", err)
	}

	if cfg != DefaultRockswapConfig() {
		t.Errorf("expected embedded default, got %+v", cfg)
	}
}

func TestLoadPrefersUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfgDir := filepath.Join(home, ".rockswap", "configs")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("failed to create user config dir: %v", err)
	}

	data := []byte("board:\n  width: 10\n  height: 8\n  colors: 7\nscoring:\n  points_per_cell: 15\n  pass_ceiling: 40\nrender:\n  resolve_every_ticks: 10\n  highlight_ticks: 6\n")
	if err := os.WriteFile(filepath.Join(cfgDir, "rockswap.yaml"), data, 0o644); err != nil {
		t.Fatalf("failed to write user config: %v", err)
	}

	cfg, err := LoadRockswap("")
	if err != nil {
		t.Fatalf("LoadRockswap failed: %v", err)
	}

	if cfg.Board.Width != 10 || cfg.Board.Colors != 7 {
		t.Errorf("expected user config values, got %+v", cfg.Board)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RockswapConfig)
	}{
		{"width too small", func(c *RockswapConfig) { c.Board.Width = 3 }},
		{"height too large", func(c *RockswapConfig) { c.Board.Height = 17 }},
		{"too few colors", func(c *RockswapConfig) { c.Board.Colors = 2 }},
		{"too many colors", func(c *RockswapConfig) { c.Board.Colors = 9 }},
		{"zero points", func(c *RockswapConfig) { c.Scoring.PointsPerCell = 0 }},
		{"zero ceiling", func(c *RockswapConfig) { c.Scoring.PassCeiling = 0 }},
		{"zero pacing", func(c *RockswapConfig) { c.Render.ResolveEveryTicks = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRockswapConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error for %s", tc.name)
			}
		})
	}
}

func TestApplyBoardPreset(t *testing.T) {
	tests := []struct {
		preset BoardPreset
		width  int
		height int
		colors int
	}{
		{PresetClassic, 8, 8, 6},
		{PresetMini, 6, 6, 5},
		{PresetGrand, 10, 8, 7},
	}

	for _, tc := range tests {
		cfg := DefaultRockswapConfig()
		ApplyBoardPreset(&cfg, tc.preset)

		if cfg.Board.Width != tc.width || cfg.Board.Height != tc.height || cfg.Board.Colors != tc.colors {
			t.Errorf("preset %q: expected %dx%d with %d colors, got %+v",
				tc.preset, tc.width, tc.height, tc.colors, cfg.Board)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %q produced invalid config: %v", tc.preset, err)
		}
	}
}

func TestApplyEmptyPresetKeepsConfig(t *testing.T) {
	cfg := DefaultRockswapConfig()
	cfg.Board.Width = 12

	ApplyBoardPreset(&cfg, "")

	if cfg.Board.Width != 12 {
		t.Errorf("empty preset should not modify config, got width %d", cfg.Board.Width)
	}
}

func TestParseBoardPreset(t *testing.T) {
	tests := []struct {
		input    string
		expected BoardPreset
	}{
		{"classic", PresetClassic},
		{"mini", PresetMini},
		{"grand", PresetGrand},
		{"nightmare", ""},
		{"", ""},
	}

	for _, tc := range tests {
		if got := ParseBoardPreset(tc.input); got != tc.expected {
			t.Errorf("ParseBoardPreset(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}

func TestGetDefaultYAML(t *testing.T) {
	for _, id := range []string{"rockswap", "rockswap_mini", "rockswap_grand"} {
		if GetDefaultYAML(id) == nil {
			t.Errorf("expected embedded YAML for %q", id)
		}
	}
	if GetDefaultYAML("tetris") != nil {
		t.Error("expected nil YAML for unknown game")
	}
}
