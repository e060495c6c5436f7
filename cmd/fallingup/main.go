// fallingup is a terminal port of Falling Up: hop between bars while the
// camera sinks faster and faster, and keep away from the sun.
//
// Usage:
//
//	fallingup                  - Play (same as "fallingup play")
//	fallingup play             - Play in this terminal
//	fallingup list             - List registered games
//	fallingup serve            - Start SSH server for remote play
//	fallingup runs             - Browse recorded runs
//	fallingup replay <run-id>  - Re-simulate a recorded run
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set run journal path (default: ~/.fallingup/runs.db)
//	--config <path>      - Custom game config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/falling-up/internal/config"
	"github.com/vovakirdan/falling-up/internal/games/fallingup"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fallingup",
	Short: "Falling Up - a vertical platformer for your terminal",
	Long: `Falling Up drops you onto a column of offset bars while the camera
keeps sinking. Land on the bars, slip through the gaps and stay below the
sun line for as long as you can. The speed rises every ten seconds.

Available commands:
  play     - Play in this terminal (default)
  list     - Show registered games
  serve    - Start SSH server for remote play
  runs     - Browse the run journal
  replay   - Re-simulate a recorded run

Examples:
  fallingup
  fallingup play --difficulty hard
  fallingup serve --ssh :2222
  fallingup runs
  fallingup replay 1f3c9a2e`,
	PersistentPreRunE: setup,
	Run:               runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.fallingup/runs.db", "Path to run journal")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
}

// setup validates the shared flags and hands them to the game package.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	fallingup.SetConfigPath(flagConfig)
	fallingup.SetDifficultyPreset(flagDifficulty)
	return nil
}

// newFileLogger writes to ~/.fallingup/fallingup.log, since the alt screen
// owns the terminal while playing. It falls back to a silent logger.
func newFileLogger() (*log.Logger, func()) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	dir := filepath.Join(home, ".fallingup")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "fallingup.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	return logger, func() { f.Close() }
}
