package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreaker/assets"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/logging"
	"github.com/vovakirdan/brickbreaker/internal/platform/sound"
	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
	"github.com/vovakirdan/brickbreaker/internal/preload"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/A, Right/D  - Move the paddle
  Space            - Launch the ball
  P                - Pause
  H                - Help
  R/Enter          - Play again (after the game ends)
  Q/Ctrl+C         - Quit

Examples:
  breakout play
  breakout play --seed 42 --fps 30
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	// The alt screen owns stdout, so logs go to a file.
	logger, logFile, err := logging.OpenFile(flagLogFile, "breakout", flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Cells are about twice as tall as wide.
	fieldW, fieldH := core.FitField(cfg.Field.Width, cfg.Field.Height, float64(width), float64(height*2), 1)
	runtime := cfg.Runtime(fieldW, fieldH, flagSeed)
	logger.Info("starting", "field", fmt.Sprintf("%dx%d", runtime.FieldW, runtime.FieldH), "terminal", fmt.Sprintf("%dx%d", width, height))

	player := sound.New(cfg.Audio, logger)
	player.Init()
	defer player.Close()

	loader := preload.NewFSLoader(assets.FS(cfg.Assets.Dir), player.Sink)

	runErr := tui.Run(tui.Options{
		Config:  cfg,
		Runtime: runtime,
		Loader:  loader,
		Audio:   player,
		Logger:  logger,
		Width:   width,
		Height:  height,
	})
	if runErr != nil {
		logger.Error("game exited", "err", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
