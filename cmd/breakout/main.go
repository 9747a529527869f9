// breakout is a brick breaker for the terminal.
//
// Usage:
//
//	breakout play     - Play in the terminal
//	breakout assets   - Load every asset and print a report
//	breakout config   - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>    - Config file (default: search ~/.breakout, ./configs)
//	--assets <dir>     - Load assets from a directory instead of the embedded set
//	--fps <rate>       - Set tick rate (default: from config)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--log-file <path>  - Log file (default: ~/.breakout/breakout.log)
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagAssets  string
	flagFPS     int
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Brick breaker in your terminal",
	Long: `Breakout is a brick breaker: bounce the ball off the paddle and
destroy every block without letting the ball fall past the bottom.

Available commands:
  play     - Play in the terminal
  assets   - Load every asset and print a report
  config   - Print the effective configuration

Examples:
  breakout play
  breakout play --seed 42
  breakout assets --assets ./my-assets
  breakout config > ~/.breakout/config.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Asset directory (default: embedded assets)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", filepath.Join(config.UserDir(), "breakout.log"), "Log file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies the global flags.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Info("config loaded", "source", source)

	if flagAssets != "" {
		cfg.Assets.Dir = flagAssets
	}
	if flagFPS > 0 {
		cfg.Loop.TickRate = flagFPS
	}
	return cfg, nil
}
