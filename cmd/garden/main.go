// garden is Pixel Bee Garden for the terminal: steer a bee around a
// garden, collect flowers and keep clear of the spiders.
//
// Usage:
//
//	garden play              - Play in this terminal
//	garden serve             - Start SSH server for remote play
//	garden scores            - Show the best score and run history
//	garden share             - Print the share message for a score
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible spawns
//	--db <path>           - Set database path (default: ~/.bee-garden/garden.db)
//	--config <path>       - Load a custom garden YAML
//	--difficulty <preset> - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bee-garden/internal/config"
)

var (
	// Global flags
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
	Use:   "garden",
	Short: "Pixel Bee Garden - collect flowers, dodge spiders",
	Long: `Pixel Bee Garden puts you in charge of a bee in a small garden.
Flowers bloom at random spots; each one collected is worth 10 points.
Spiders crawl in from the edges, and touching one ends the run.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View the best score and run history
  share    - Print the share message and link

Examples:
  garden play
  garden play --difficulty hard
  garden serve --ssh :2222
  garden scores --recent
  garden share --score 120`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bee-garden/garden.db", "Path to garden database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom garden config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(shareCmd)
}

// loadConfig resolves the garden configuration from --config and
// --difficulty.
func loadConfig() (config.GardenConfig, error) {
	cfg, err := config.LoadGarden(flagConfig)
	if err != nil {
		return config.GardenConfig{}, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.GardenConfig{}, err
	}
	config.ApplyGardenPreset(&cfg, preset)

	return cfg, nil
}
