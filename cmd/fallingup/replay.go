package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/falling-up/internal/config"
	"github.com/vovakirdan/falling-up/internal/games/fallingup"
	"github.com/vovakirdan/falling-up/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <run-id>",
	Short: "Re-simulate a recorded run",
	Long: `Replay feeds the recorded inputs of a run back through the simulation,
without a screen, and reports whether it ends the same way.

The run ID may be shortened to any unique prefix, as printed by
'fallingup runs'. The run's own difficulty preset is applied on top of the
current config, so a changed config file makes replays diverge.

Examples:
  fallingup replay 1f3c9a2e
  fallingup replay 1f3c --config ./my-fallingup.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	run, err := store.RunByID(args[0])
	switch {
	case errors.Is(err, storage.ErrRunNotFound):
		fmt.Fprintf(os.Stderr, "No run matches %q. Run 'fallingup runs' to list runs.\n", args[0])
		os.Exit(1)
	case errors.Is(err, storage.ErrAmbiguousRun):
		fmt.Fprintf(os.Stderr, "Several runs start with %q; use a longer prefix.\n", args[0])
		os.Exit(1)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error loading run: %v\n", err)
		os.Exit(1)
	}

	ok, err := replayRun(run)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		os.Exit(2)
	}
}

// replayRun re-simulates run and prints the comparison. It reports whether
// the replay matched the recording.
func replayRun(run *storage.Run) (bool, error) {
	cfg, err := config.LoadFalling(flagConfig)
	if err != nil {
		return false, err
	}
	preset, err := config.ParsePreset(run.Preset)
	if err != nil {
		return false, err
	}
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}

	got, err := fallingup.Replay(cfg, run.Seed, run.TickRate, run.Inputs)
	if err != nil && !errors.Is(err, fallingup.ErrRunNotFinished) {
		return false, err
	}

	fmt.Printf("Run %s  seed %d  %d ticks @ %d/s\n", run.ShortID(), run.Seed, run.Ticks, run.TickRate)
	fmt.Printf("  recorded: %.2fs survived, %d speed-ups\n", run.Score, run.Thresholds)
	fmt.Printf("  replayed: %.2fs survived, %d speed-ups\n", got.Score, got.Thresholds)

	match := err == nil && got.Score == run.Score && got.Ticks == run.Ticks && got.Thresholds == run.Thresholds
	if match {
		fmt.Println("Replay matches the recording.")
	} else {
		fmt.Println("Replay diverged from the recording.")
	}
	return match, nil
}
