package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/BruceRanger/rockswap/internal/core"
	"github.com/BruceRanger/rockswap/internal/games/rockswap"
	"github.com/BruceRanger/rockswap/internal/platform/tui"
	"github.com/BruceRanger/rockswap/internal/registry"
	"github.com/BruceRanger/rockswap/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <board>",
	Short: "Play a specific board",
	Long: `Start playing the specified board variant.

Controls:
  Arrows/WASD  - Move the cursor
  Space/Enter  - Grab a rock, then swap it with an adjacent one
  P/Esc        - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Examples:
  rockswap play rockswap
  rockswap play rockswap_mini
  rockswap play rockswap_grand --seed 42
  rockswap play rockswap --config ./my-board.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'rockswap list' to see available boards.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Custom config applies to every board variant
	rockswap.SetConfigPath(flagConfig)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open storage for high scores
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close storage
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
