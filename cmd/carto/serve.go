package main

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/giladgray/cartographist/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server so others can play from their own terminal.

Each connection gets its own menu and run. All players share one scoreboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, generates a key at ~/.carto/host_key

Examples:
  carto serve                           # Listen on :23235
  carto serve --ssh :2222               # Listen on port 2222
  carto serve --host-key ./my_host_key  # Use a specific host key
  carto serve --db ./scores.db          # Use a specific database

Players connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
	}

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("carto-ssh"))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	if _, port, err := net.SplitHostPort(cfg.Address); err == nil {
		logger.Info("press Ctrl+C to stop", "connect", "ssh localhost -p "+port)
	}
	return server.ListenAndServe()
}
