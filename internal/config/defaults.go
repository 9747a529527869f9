package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/breakout.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}

// DefaultConfig returns the hardcoded default configuration.
// It matches defaults/breakout.yaml.
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{
			Width:  1280,
			Height: 720,
		},
		Grid: GridConfig{
			Rows:        4,
			Columns:     8,
			BlockWidth:  111,
			BlockHeight: 39,
			PitchX:      113,
			PitchY:      42,
		},
		Ball: BallConfig{
			Width:       40,
			Height:      40,
			Speed:       360, // 6 px per frame at 60fps
			Frames:      2,
			SpawnOffset: 85,
		},
		Platform: PlatformConfig{
			Width:        250,
			Height:       14,
			Speed:        480,
			BottomOffset: 45,
		},
		HUD: HUDConfig{
			ScoreX: 70,
			ScoreY: 46,
		},
		Assets: AssetsConfig{
			ImageDir:    "img",
			ImageExt:    ".png",
			SoundDir:    "sounds",
			SoundExt:    ".wav",
			Sprites:     []string{"background", "ball", "platform", "block"},
			Sounds:      []string{"bump", "hit", "fail", "victory"},
			LoadTimeout: 10 * time.Second,
		},
		Loop: LoopConfig{
			TickRate:      60,
			MaxFrameDelta: 50 * time.Millisecond,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.8,
		},
		Terminal: TerminalConfig{
			HoldInitial: 550 * time.Millisecond,
			HoldRelease: 120 * time.Millisecond,
		},
	}
}
