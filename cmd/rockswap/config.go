package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BruceRanger/rockswap/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [board]",
	Short: "Print the default board config YAML",
	Long: `Print the default configuration for a board variant to stdout.

Redirect the output to create a starting point for a custom config:

  rockswap config > my-board.yaml
  rockswap config rockswap_mini > ~/.rockswap/configs/rockswap.yaml

Then edit the file and pass it to play or sim with --config.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, args []string) {
	gameID := "rockswap"
	if len(args) > 0 {
		gameID = args[0]
	}

	yamlData := config.GetDefaultYAML(gameID)
	if yamlData == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'rockswap list' to see available boards.")
		os.Exit(1)
	}

	os.Stdout.Write(yamlData)
}
