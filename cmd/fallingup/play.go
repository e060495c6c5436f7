package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/falling-up/internal/audio"
	"github.com/vovakirdan/falling-up/internal/config"
	"github.com/vovakirdan/falling-up/internal/core"
	"github.com/vovakirdan/falling-up/internal/games/fallingup"
	"github.com/vovakirdan/falling-up/internal/platform/tui"
	"github.com/vovakirdan/falling-up/internal/registry"
	"github.com/vovakirdan/falling-up/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Falling Up",
	Long: `Start Falling Up in this terminal.

Controls:
  Left/A/H, Right/D/L  - Move
  Space/Up/W           - Jump
  Enter                - Start
  P                    - Pause
  R                    - Retry (after game over)
  B/Esc                - Back to the title screen (after game over)
  Ctrl+S               - Save a screenshot to ~/.fallingup/screenshots
  Q/Ctrl+C             - Quit

Difficulty options:
  easy   - Slower start, speeds up every ten seconds
  normal - The configured starting speed
  hard   - Faster start, speeds up every ten seconds
  fixed  - No speed-ups

Examples:
  fallingup play
  fallingup play --difficulty hard
  fallingup play --seed 42 --mute
  fallingup play --config ./my-fallingup.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable music and sound effects")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog := newFileLogger()
	defer closeLog()
	fallingup.SetLogger(logger)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if !flagMute {
		sounds := audio.NewSoundManager()
		if err := sounds.Initialize(); err != nil {
			logger.Warn("audio unavailable, playing muted", "err", err)
		} else {
			defer sounds.Cleanup()
			fallingup.SetSounds(sounds)
		}
	}

	game, err := registry.Create(fallingup.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		logger.Warn("playing without run journal", "err", err)
		store = nil
	}

	runErr := tui.Run(game, store, cfg, tui.ModelOptions{
		HoldWindow: holdWindow(logger),
		Preset:     flagDifficulty,
		Origin:     storage.OriginLocal,
		Logger:     logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// holdWindow reads the key hold window from the game config.
func holdWindow(logger *log.Logger) time.Duration {
	cfg, err := config.LoadFalling(flagConfig)
	if err != nil {
		logger.Warn("using default hold window", "err", err)
		return tui.DefaultHoldWindow
	}
	return time.Duration(cfg.Input.HoldWindowMS) * time.Millisecond
}
