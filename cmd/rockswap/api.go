package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BruceRanger/rockswap/internal/platform/httpapi"
)

var flagHTTPAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the HTTP API for scores and stats",
	Long: `Start a read-only HTTP API that serves recorded scores and
aggregate statistics as JSON.

Endpoints:
  GET /healthz                 - Liveness check
  GET /api/games               - List board variants
  GET /api/games/{id}/scores   - Top scores (?limit=N, default 10)
  GET /api/games/{id}/stats    - Aggregate stats for one board
  GET /api/stats               - Aggregate stats for all boards

Examples:
  rockswap api
  rockswap api --http :9090
  rockswap api --db ./scores.db`,
	Run: runAPI,
}

func init() {
	defaults := httpapi.DefaultConfig()

	apiCmd.Flags().StringVar(&flagHTTPAddr, "http", defaults.Address, "HTTP listen address (host:port)")
}

func runAPI(_ *cobra.Command, _ []string) {
	server := httpapi.NewServer(httpapi.Config{
		Address: flagHTTPAddr,
		DBPath:  flagDBPath,
	})

	fmt.Printf("Starting RockSwap API on %s\n", flagHTTPAddr)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
