package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BruceRanger/rockswap/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available boards",
	Long:  `Display a list of all registered board variants with their IDs and titles.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No boards available.")
		return
	}

	fmt.Println("Available boards:")
	fmt.Println()

	for _, game := range games {
		fmt.Printf("  %-20s %s\n", game.ID, game.Title)
	}

	fmt.Println()
	fmt.Println("Run 'rockswap play <id>' to start playing.")
}
