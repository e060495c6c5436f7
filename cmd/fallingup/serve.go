package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/falling-up/internal/config"
	"github.com/vovakirdan/falling-up/internal/games/fallingup"
	"github.com/vovakirdan/falling-up/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Falling Up SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection plays its own game. Finished runs from every session
go into the same run journal, tagged with origin "ssh". Sessions are silent.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.fallingup/host_key

Examples:
  fallingup serve                           # Listen on :23234
  fallingup serve --ssh :2222               # Listen on port 2222
  fallingup serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.GameID = fallingup.ID
	cfg.TickRate = flagFPS
	cfg.Preset = flagDifficulty
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	if gameCfg, err := config.LoadFalling(flagConfig); err == nil {
		cfg.HoldWindow = time.Duration(gameCfg.Input.HoldWindowMS) * time.Millisecond
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Falling Up SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
