package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bee-garden/internal/garden"
	"github.com/vovakirdan/bee-garden/internal/storage"
)

var flagShareScore int

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Print the share message and link for a score",
	Long: `Print the share message and a tweet link for a score.
Without --score the stored best score is used.

Examples:
  garden share
  garden share --score 120`,
	Args: cobra.NoArgs,
	Run:  runShare,
}

func init() {
	shareCmd.Flags().IntVar(&flagShareScore, "score", -1, "Score to share (default: stored best)")
}

func runShare(_ *cobra.Command, _ []string) {
	gardenCfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	score := flagShareScore
	if score < 0 {
		score = storedBest(gardenCfg.Storage.BestKey)
	}

	text := garden.ShareText(gardenCfg.Share.Message, score)
	fmt.Println(text)
	fmt.Println()
	fmt.Println(garden.ShareURL(text, gardenCfg.Share.URL))
}

// storedBest reads the best score, treating any failure as 0.
func storedBest(key string) int {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open garden database: %v\n", err)
		return 0
	}
	defer store.Close()

	raw, ok, err := store.Get(key)
	if err != nil || !ok {
		return 0
	}
	return garden.ParseBest(raw)
}
