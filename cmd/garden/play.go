package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bee-garden/internal/core"
	"github.com/vovakirdan/bee-garden/internal/garden"
	"github.com/vovakirdan/bee-garden/internal/platform/tui"
	"github.com/vovakirdan/bee-garden/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the garden in this terminal.

Controls:
  Arrows/WASD  - Steer the bee
  Enter/Space  - Start
  R            - Restart (after game over)
  S            - Share your score (after game over)
  Tab          - Run history (outside a run)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Spider spawn intervals stretched to 150%
  normal - Default pacing
  hard   - Spider spawn intervals cut to 70%

Examples:
  garden play
  garden play --difficulty easy
  garden play --seed 42
  garden play --config ./my-garden.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log", "~/.bee-garden/garden.log", "Log file (the terminal is busy drawing); empty disables logging")
}

func runPlay(_ *cobra.Command, _ []string) {
	gardenCfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, logErr := openLogFile(flagLogFile)
		if logErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", logErr)
		} else {
			defer f.Close()
			logOut = f
		}
	}
	logger, err := newLogger(logOut, "garden")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	opts := []garden.Option{
		garden.WithSeed(cfg.Seed),
		garden.WithLogger(logger),
	}

	// Continue without storage if the database is unavailable - game still works
	var history tui.History
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open garden database: %v\n", err)
		logger.Warn("playing without persistence", "path", flagDBPath, "error", err)
	} else {
		history = store
		opts = append(opts, garden.WithStore(store))
	}

	game := garden.New(gardenCfg, opts...)
	runErr := tui.Run(game, history, cfg, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running garden: %v\n", runErr)
		os.Exit(1)
	}
}
