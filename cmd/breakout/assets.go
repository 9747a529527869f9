package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/assets"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/logging"
	"github.com/vovakirdan/brickbreaker/internal/platform/sound"
	"github.com/vovakirdan/brickbreaker/internal/preload"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Load every asset and print a report",
	Long: `Runs the same preload barrier as the game and reports every asset.
Exits with status 1 when the barrier does not complete.

Examples:
  breakout assets
  breakout assets --assets ./my-assets`,
	Args: cobra.NoArgs,
	Run:  runAssets,
}

func runAssets(cmd *cobra.Command, args []string) {
	logger := logging.New(os.Stderr, "breakout", flagDebug)

	cfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Decode sounds without opening an audio device.
	player := sound.New(cfg.Audio, logger)
	manifest := preload.NewManifest(cfg.Assets)
	loader := preload.NewFSLoader(assets.FS(cfg.Assets.Dir), player.Sink)

	var mu sync.Mutex
	loaded := make(map[string]bool, manifest.Len())
	res := preload.Preload(context.Background(), manifest, loader, preload.Options{
		Timeout: cfg.Assets.LoadTimeout,
		OnProgress: func(p preload.Progress) {
			mu.Lock()
			loaded[p.Asset.Path] = true
			mu.Unlock()
		},
	})

	source := "embedded"
	if cfg.Assets.Dir != "" {
		source = cfg.Assets.Dir
	}
	fmt.Printf("Assets (%s):\n", source)
	fmt.Println()

	// Calculate column widths
	maxPathLen := 4 // "Path" header
	for _, a := range manifest.Assets {
		maxPathLen = max(maxPathLen, len(a.Path))
	}

	fmt.Printf("  %-6s  %-*s  %s\n", "Kind", maxPathLen, "Path", "Status")
	fmt.Printf("  %-6s  %-*s  %s\n", "----", maxPathLen, "----", "------")
	// Sprites first, then sounds
	for _, kind := range []preload.Kind{preload.KindSprite, preload.KindSound} {
		for _, a := range manifest.Of(kind) {
			status := "missing"
			if loaded[a.Path] {
				status = "ok"
				if kind == preload.KindSound {
					status = fmt.Sprintf("ok (%v)", player.Duration(core.Sound(a.Name)))
				}
			}
			fmt.Printf("  %-6s  %-*s  %s\n", kind, maxPathLen, a.Path, status)
		}
	}

	fmt.Println()
	fmt.Println(res.String())
	if !res.Ready() {
		os.Exit(1)
	}
}
