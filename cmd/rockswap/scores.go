package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BruceRanger/rockswap/internal/registry"
	"github.com/BruceRanger/rockswap/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <board>",
	Short: "Show high scores for a board",
	Long: `Display the top 10 high scores recorded for the specified board,
with moves and deepest cascade per run.

Examples:
  rockswap scores rockswap
  rockswap scores rockswap_mini`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'rockswap list' to see available boards.")
		os.Exit(1)
	}

	// Open storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading scores: %v\n", err)
		os.Exit(1)
	}

	if len(scores) == 0 {
		fmt.Printf("No scores recorded yet for %q.\n", gameID)
		fmt.Printf("Play it with: rockswap play %s\n", gameID)
		return
	}

	// Print header
	fmt.Printf("High scores for %q:\n", gameID)
	fmt.Println()
	fmt.Printf("  %-4s  %-10s  %-7s  %-7s  %s\n", "Rank", "Score", "Moves", "Chain", "Date")
	fmt.Printf("  %-4s  %-10s  %-7s  %-7s  %s\n", "----", "-----", "-----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-7d  x%-6d  %s\n", i+1, entry.Score, entry.Moves, entry.MaxChain, dateStr)
	}

	fmt.Println()

	// Aggregate footer across all recorded runs
	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Printf("Best: %d   Games: %d   Avg: %.0f   Best chain: x%d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestChain)
	}
}
