package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/falling-up/internal/platform/tui"
	"github.com/vovakirdan/falling-up/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsClear bool
	flagRunsPlain bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse recorded runs",
	Long: `List the most recent runs from the journal, newest first.

In a terminal the list opens in an interactive browser; when the output is
piped, or with --plain, it is printed as text.

Examples:
  fallingup runs
  fallingup runs --plain --limit 5
  fallingup runs --clear`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs to print with --plain")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete every recorded run")
	runsCmd.Flags().BoolVar(&flagRunsPlain, "plain", false, "Print instead of opening the browser")
}

func runRuns(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run journal cleared.")
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagRunsPlain && term.IsTerminal(fd) {
		width, height, sizeErr := term.GetSize(fd)
		if sizeErr != nil {
			width, height = 80, 24
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printRuns(store, flagRunsLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printRuns(store *storage.Store, limit int) error {
	runs, err := store.RecentRuns(limit)
	if err != nil {
		return err
	}
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Println("Falling Up - Recent Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'fallingup play' to record one.")
		return nil
	}

	fmt.Printf("  %-8s  %-9s  %-5s  %-6s  %-6s  %s\n", "Run", "Survived", "Ramps", "Preset", "Origin", "Date")
	fmt.Printf("  %-8s  %-9s  %-5s  %-6s  %-6s  %s\n", "---", "--------", "-----", "------", "------", "----")
	for _, r := range runs {
		preset := r.Preset
		if preset == "" {
			preset = "config"
		}
		fmt.Printf("  %-8s  %8.2fs  %-5d  %-6s  %-6s  %s\n",
			r.ShortID(), r.Score, r.Thresholds, preset, r.Origin, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("%d runs, %.2fs survived in total\n", stats.Runs, stats.TotalTime)
	return nil
}
