package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the snake SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection plays its own independent game. Runs of all players
are kept in memory for the lifetime of the server, so the best score in
the footer is server-wide.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.snake/host_key

Examples:
  snake serve                           # Listen on :23234 with auto-generated key
  snake serve --ssh :2222               # Listen on port 2222
  snake serve --host-key ./my_host_key  # Use specific host key
  snake serve --fps 12 --log-level debug

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	level, err := tui.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	logger := tui.NewLogger(os.Stderr, level, "snake-ssh")

	game, source, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source, "tick_rate", game.TickRate)

	journal, err := storage.OpenMemory()
	if err != nil {
		return err
	}
	defer journal.Close()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Game:        game,
	}

	server, err := tui.NewSSHServer(cfg, journal, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting snake SSH server on %s\n", cfg.Address)
	fmt.Println(connectHint(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(cmd.Context()); err != nil {
		return err
	}

	if sum, err := journal.Summary(""); err == nil {
		logger.Info("server stopped", "runs", sum.Runs, "best", sum.BestScore)
	}
	return nil
}

// connectHint returns the ssh command line for a server listening on addr.
func connectHint(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Sprintf("Connect with: ssh %s", addr)
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return fmt.Sprintf("Connect with: ssh %s -p %s", host, port)
}
