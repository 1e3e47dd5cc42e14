package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bee-garden/internal/garden"
	"github.com/vovakirdan/bee-garden/internal/platform/tui"
	"github.com/vovakirdan/bee-garden/internal/storage"
)

var (
	flagClear       bool
	flagRecent      bool
	flagLimit       int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best score and run history",
	Long: `Display the best score and the top runs.

Examples:
  garden scores
  garden scores --recent --limit 20
  garden scores --interactive
  garden scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history and the best score")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest runs instead of the best ones")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the history in a scrollable table")
}

func runScores(_ *cobra.Command, _ []string) {
	gardenCfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	bestKey := gardenCfg.Storage.BestKey

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening garden database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(bestKey); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history and best score cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var scores []storage.ScoreEntry
	title := "Top runs"
	if flagRecent {
		title = "Recent runs"
		scores, err = store.RecentScores(flagLimit)
	} else {
		scores, err = store.TopScores(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	best := 0
	if raw, ok, getErr := store.Get(bestKey); getErr == nil && ok {
		best = garden.ParseBest(raw)
	}

	fmt.Printf("Pixel Bee Garden - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'garden play' to set the first best score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "Rank", "Score", "Run", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "----", "-----", "---", "----")

	for i, entry := range scores {
		runID := entry.RunID
		if len(runID) > 8 {
			runID = runID[:8]
		}
		fmt.Printf("  %-4d  %-8d  %-8s  %s\n", i+1, entry.Score, runID, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", best)
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Runs: %d   Average: %.1f\n", stats.Runs, stats.AvgScore)
	}
}
