package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/BruceRanger/rockswap/internal/core"
	"github.com/BruceRanger/rockswap/internal/games/rockswap"
	"github.com/BruceRanger/rockswap/internal/platform/tui"
	"github.com/BruceRanger/rockswap/internal/registry"
	"github.com/BruceRanger/rockswap/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive board picker menu",
	Long: `Open an interactive menu showing all boards with their high scores.
Pick a board to play, or press Tab to browse the scoreboard.
After a game ends you return to the menu.`,
	Run: runMenuCmd,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
}

func runMenuCmd(cmd *cobra.Command, args []string) {
	// Open storage for high scores
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Custom config applies to every board variant
	rockswap.SetConfigPath(flagConfig)

	// Menu loop: menu -> game -> back to menu
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running menu: %v\n", err)
			break
		}

		// Carry terminal resizes that happened while the menu was up
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
				break
			}
			if !goBack {
				break
			}
			continue
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			break
		}

		// Fresh seed per run so every game deals a different board
		cfg.Seed = time.Now().UnixNano()

		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
