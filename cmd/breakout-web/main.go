// breakout-web is the brick breaker in a desktop window, or in a browser tab
// when built with GOOS=js GOARCH=wasm.
//
// Usage:
//
//	breakout-web [--config path] [--assets dir] [--seed value] [--debug]
package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/assets"
	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/logging"
	"github.com/vovakirdan/brickbreaker/internal/platform/web"
	"github.com/vovakirdan/brickbreaker/internal/preload"
)

var (
	flagConfig string
	flagAssets string
	flagSeed   int64
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout-web",
	Short: "Brick breaker in a window",
	Long: `Opens the brick breaker in a window sized to the display.

Controls:
  Left/A, Right/D  - Move the paddle
  Space            - Launch the ball
  P                - Pause
  H                - Help (Esc closes)
  R/Enter          - Play again (after the game ends)
  Q                - Quit`,
	Args: cobra.NoArgs,
	Run:  run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.Flags().StringVar(&flagAssets, "assets", "", "Asset directory (default: embedded assets)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

func run(cmd *cobra.Command, args []string) {
	logger := logging.New(os.Stderr, "breakout", flagDebug)

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger.Info("config loaded", "source", source)
	if flagAssets != "" {
		cfg.Assets.Dir = flagAssets
	}

	var audioCtx *audio.Context
	if cfg.Audio.Enabled {
		audioCtx = audio.NewContext(web.SampleRate)
	}
	store := web.NewStore(audioCtx, cfg.Audio, logger)

	fieldW, fieldH := web.FitField(cfg)
	runtime := cfg.Runtime(fieldW, fieldH, flagSeed)
	logger.Info("starting", "field", fmt.Sprintf("%dx%d", runtime.FieldW, runtime.FieldH))

	err = web.Run(web.Options{
		Config:  cfg,
		Runtime: runtime,
		Loader:  preload.NewFSLoader(assets.FS(cfg.Assets.Dir), store.Sink),
		Store:   store,
		Logger:  logger,
		Title:   "Brick Breaker",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
