package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/BruceRanger/rockswap/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagSSHDBPath   string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server that lets players connect and play remotely.

Players connect with a regular SSH client:
  ssh -p 23234 localhost

Each session gets the board picker menu. Scores are saved to the
shared database under the SSH username.

Examples:
  rockswap serve
  rockswap serve --ssh :2222
  rockswap serve --ssh :23234 --db /var/lib/rockswap/scores.db`,
	Run: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()

	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH listen address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to SSH host key (auto-generated if empty)")
	serveCmd.Flags().StringVar(&flagSSHDBPath, "db", defaults.DBPath, "Path to scores database")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", defaults.IdleTimeout, "Disconnect idle sessions after this duration")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagSSHDBPath,
		IdleTimeout: flagIdleTimeout,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating SSH server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting RockSwap SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh -p %s localhost\n", portFromAddr(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// portFromAddr extracts the port from a host:port address for display.
func portFromAddr(addr string) string {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[i+1:]
		}
	}
	return addr
}
