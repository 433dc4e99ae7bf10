// rockswap is a terminal match-three puzzle where you swap adjacent rocks
// to line up three or more of a color and chase cascade chains.
//
// Usage:
//
//	rockswap list              - List available boards
//	rockswap play <board>      - Play a board
//	rockswap menu              - Start menu to pick boards interactively
//	rockswap serve             - Start SSH server for remote play
//	rockswap api               - Start HTTP API for scores and stats
//	rockswap scores <board>    - Show high scores for a board
//	rockswap sim               - Batch-play boards with a random policy
//	rockswap config            - Print the default board config YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.rockswap/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import boards to register them
	_ "github.com/BruceRanger/rockswap/internal/games/rockswap"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rockswap",
	Short: "RockSwap - A match-three puzzle in your terminal",
	Long: `RockSwap is a terminal match-three puzzle. Swap adjacent rocks to
line up three or more of a color; longer lines mint special rocks,
and cascades multiply your score.

Available commands:
  list     - Show all available boards
  play     - Play a specific board directly
  menu     - Interactive board picker menu
  serve    - Start SSH server for remote play
  api      - Start HTTP API for scores and stats
  scores   - View high scores
  sim      - Batch-play boards with a random policy
  config   - Print the default board config YAML

Examples:
  rockswap list
  rockswap play rockswap
  rockswap menu
  rockswap serve --ssh :2222
  rockswap scores rockswap
  rockswap sim --runs 5000 --preset mini`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rockswap/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
